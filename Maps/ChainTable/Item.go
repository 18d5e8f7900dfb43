package ChainTable

// Item is an entry in a bucket's chain. Items are owned by the table; the
// pointer returned by ChainTable.Search is valid until the item is deleted.
type Item struct {
	Key   string
	Value float32
	next  *Item
}

// Next item in the same bucket, nil at the end of the chain.
func (u *Item) Next() *Item {
	return u.next
}
