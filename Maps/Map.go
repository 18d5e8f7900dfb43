// Package Maps holds single threaded hash tables keyed by strings.
package Maps

// Table maps string keys to values of type V.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined.
type Table[V any] interface {
	//Insert v under k, replacing the value of an existing key. Returns true
	//if a new entry was created.
	Insert(k string, v V) bool
	//Get the value stored under k.
	Get(k string) (V, bool)
	//Delete k. Returns false if k isn't in the Table.
	Delete(k string) bool
	//DeleteAll entries.
	DeleteAll()
	//Range calls f for every entry until f returns false.
	Range(f func(k string, v V) bool)
	//Size of the Table.
	Size() uint
}
