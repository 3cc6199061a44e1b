package model

// Item is a priced item as sent in request bodies.
type Item struct {
	Name        string
	Description *string
	Price       float64
	Tax         *float64
}

// PriceWithTax returns Price plus Tax, and false when no tax was given.
func (i Item) PriceWithTax() (float64, bool) {
	if i.Tax == nil {
		return 0, false
	}
	return i.Price + *i.Tax, true
}

// SampleItem is an entry of the read-only sample catalogue.
type SampleItem struct {
	Name string
}
