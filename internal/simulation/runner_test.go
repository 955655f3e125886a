package simulation

import (
	"bytes"
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/llm-d/gilded-rose/internal/fixture"
	"github.com/llm-d/gilded-rose/internal/inventory"
	"github.com/llm-d/gilded-rose/internal/item"
	"github.com/llm-d/gilded-rose/internal/logging"
)

func newDefaultInventory() *inventory.Inventory {
	f := fixture.Default()
	inv, err := inventory.New(f.ItemList(), inventory.WithCategoryConfig(f.CategoryConfig()))
	Expect(err).NotTo(HaveOccurred())
	return inv
}

var _ = Describe("Runner", func() {
	var (
		ctx  context.Context
		inv  *inventory.Inventory
		days []int
		rec  Observer
	)

	BeforeEach(func() {
		ctx = log.IntoContext(context.Background(), logging.NewTestLogger())
		inv = newDefaultInventory()
		days = nil
		rec = ObserverFunc(func(day int, _ *inventory.Inventory) {
			days = append(days, day)
		})
	})

	It("should report the initial state and every day", func() {
		Expect(NewRunner(inv, rec).Run(ctx, 3)).To(Succeed())
		Expect(days).To(Equal([]int{0, 1, 2, 3}))
		Expect(inv.Day()).To(Equal(3))
	})

	It("should only report the initial state for zero days", func() {
		Expect(NewRunner(inv, rec).Run(ctx, 0)).To(Succeed())
		Expect(days).To(Equal([]int{0}))
		Expect(inv.Day()).To(Equal(0))
	})

	It("should reject negative days", func() {
		err := NewRunner(inv, rec).Run(ctx, -1)
		Expect(err).To(MatchError(errNegativeDays))
		Expect(days).To(BeEmpty())
	})

	It("should notify observers in order", func() {
		var order []string
		first := ObserverFunc(func(int, *inventory.Inventory) { order = append(order, "first") })
		second := ObserverFunc(func(int, *inventory.Inventory) { order = append(order, "second") })
		Expect(NewRunner(inv, first, second).Run(ctx, 1)).To(Succeed())
		Expect(order).To(Equal([]string{"first", "second", "first", "second"}))
	})

	Context("when the context is cancelled", func() {
		It("should not advance a run that was cancelled up front", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := NewRunner(inv, rec).Run(cancelled, 5)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(days).To(Equal([]int{0}))
			Expect(inv.Day()).To(Equal(0))
		})

		It("should stop at the last completed day", func() {
			running, cancel := context.WithCancel(ctx)
			defer cancel()
			stopper := ObserverFunc(func(day int, _ *inventory.Inventory) {
				if day == 2 {
					cancel()
				}
			})

			err := NewRunner(inv, rec, stopper).Run(running, 10)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(days).To(Equal([]int{0, 1, 2}))
			Expect(inv.Day()).To(Equal(2))
		})
	})

	Context("over a long run", func() {
		It("should keep the item count and quality bounds", func() {
			start := inv.Items()
			check := ObserverFunc(func(day int, current *inventory.Inventory) {
				Expect(current.Len()).To(Equal(len(start)))
				for i, it := range current.Items() {
					if current.Category(i).IsLegendary() {
						Expect(it).To(Equal(start[i]), "day %d", day)
						continue
					}
					Expect(it.Quality).To(BeNumerically(">=", 0), "day %d: %s", day, it)
					Expect(it.Quality).To(BeNumerically("<=", 50), "day %d: %s", day, it)
					Expect(it.SellIn).To(Equal(start[i].SellIn-day), "day %d: %s", day, it)
				}
			})
			Expect(NewRunner(inv, check).Run(ctx, 30)).To(Succeed())
		})

		It("should leave every backstage pass worthless after its concert", func() {
			Expect(NewRunner(inv).Run(ctx, 16)).To(Succeed())
			for i, it := range inv.Items() {
				if inv.Category(i) == item.CategoryBackstagePasses {
					Expect(it.Quality).To(Equal(0), it.String())
				}
			}
		})
	})
})

var _ = Describe("Printer", func() {
	It("should print the texttest format", func() {
		var buf bytes.Buffer
		p := NewPrinter(&buf)
		Expect(NewRunner(newDefaultInventory(), p).Run(context.Background(), 2)).To(Succeed())
		Expect(p.Err()).NotTo(HaveOccurred())

		Expect(buf.String()).To(Equal(`-------- day 0 --------
name, sellIn, quality
+5 Dexterity Vest, 10, 20
Aged Brie, 2, 0
Elixir of the Mongoose, 5, 7
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 15, 20
Backstage passes to a TAFKAL80ETC concert, 10, 49
Backstage passes to a TAFKAL80ETC concert, 5, 49
Conjured Mana Cake, 3, 6

-------- day 1 --------
name, sellIn, quality
+5 Dexterity Vest, 9, 19
Aged Brie, 1, 1
Elixir of the Mongoose, 4, 6
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 14, 21
Backstage passes to a TAFKAL80ETC concert, 9, 50
Backstage passes to a TAFKAL80ETC concert, 4, 50
Conjured Mana Cake, 2, 5

-------- day 2 --------
name, sellIn, quality
+5 Dexterity Vest, 8, 18
Aged Brie, 0, 2
Elixir of the Mongoose, 3, 5
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 13, 22
Backstage passes to a TAFKAL80ETC concert, 8, 50
Backstage passes to a TAFKAL80ETC concert, 3, 50
Conjured Mana Cake, 1, 4

`))
	})

	It("should stop writing after the first error", func() {
		w := &failingWriter{}
		p := NewPrinter(w)
		Expect(NewRunner(newDefaultInventory(), p).Run(context.Background(), 3)).To(Succeed())
		Expect(p.Err()).To(MatchError(errWriteFailed))
		Expect(w.calls).To(Equal(1))
	})
})

var errWriteFailed = errors.New("write failed")

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errWriteFailed
}
