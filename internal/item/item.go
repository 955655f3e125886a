package item

import "fmt"

// Item is a single line of stock. Name identifies the item for display and
// classification only; it is not a unique key.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sellIn"`
	Quality int    `json:"quality"`
}

// NewItem returns an item with the given name, sell-in and quality.
func NewItem(name string, sellIn, quality int) Item {
	return Item{Name: name, SellIn: sellIn, Quality: quality}
}

// String renders the item as "name, sellIn, quality".
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Expired reports whether the sell date has passed.
func (i Item) Expired() bool {
	return i.SellIn < 0
}
