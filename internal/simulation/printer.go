package simulation

import (
	"fmt"
	"io"

	"github.com/llm-d/gilded-rose/internal/inventory"
)

// Printer writes each day's inventory in the texttest format:
//
//	-------- day 0 --------
//	name, sellIn, quality
//	+5 Dexterity Vest, 10, 20
//	...
//	<blank line>
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// ObserveDay prints the inventory for the given day. After the first write
// error the Printer stops writing; the error is available from Err.
func (p *Printer) ObserveDay(day int, inv *inventory.Inventory) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "-------- day %d --------\nname, sellIn, quality\n%s\n", day, inv)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}
