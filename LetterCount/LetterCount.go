// Package LetterCount counts character classes of a text into a Trees.Tree.
//
// Letters are counted case insensitively, spaces are counted as ' ', and
// every other byte is counted under Other. The resulting tree may be as deep
// as the number of distinct classes; Count never rebalances it, call
// Tree.Rebalance when needed.
package LetterCount

import "github.com/g-m-twostay/go-bstree/Trees"

// Other is the key counting every byte that is neither a letter nor a space.
const Other byte = '_'

// Normalize maps c to the key it's counted under.
func Normalize(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z', c == ' ':
		return c
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	}
	return Other
}

// Count initializes t and fills it with the number of occurrences of every
// key in input. Input is read byte by byte, so each byte of a multi byte
// UTF-8 sequence counts once under Other.
func Count(t Trees.Tree, input string) {
	t.Init()
	for i := 0; i < len(input); i++ {
		k := Normalize(input[i])
		v, _ := t.Search(k)
		t.Insert(k, v+1)
	}
}
