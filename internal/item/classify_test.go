package item

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classify", func() {
	Context("with the default names", func() {
		It("should classify Aged Brie", func() {
			Expect(Classify("Aged Brie")).To(Equal(CategoryAgedBrie))
		})

		It("should classify backstage passes", func() {
			Expect(Classify("Backstage passes to a TAFKAL80ETC concert")).To(Equal(CategoryBackstagePasses))
		})

		It("should classify Sulfuras", func() {
			Expect(Classify("Sulfuras, Hand of Ragnaros")).To(Equal(CategorySulfuras))
		})

		It("should classify anything else as normal", func() {
			Expect(Classify("foo")).To(Equal(CategoryNormal))
			Expect(Classify("+5 Dexterity Vest")).To(Equal(CategoryNormal))
			Expect(Classify("")).To(Equal(CategoryNormal))
		})
	})

	Context("with near-miss names", func() {
		It("should not match on prefix", func() {
			Expect(Classify("Backstage passes to a Metallica concert")).To(Equal(CategoryNormal))
			Expect(Classify("Sulfuras")).To(Equal(CategoryNormal))
		})

		It("should be case sensitive", func() {
			Expect(Classify("aged brie")).To(Equal(CategoryNormal))
		})

		It("should not trim whitespace", func() {
			Expect(Classify(" Aged Brie")).To(Equal(CategoryNormal))
		})
	})

	Context("with a custom config", func() {
		var config CategoryConfig

		BeforeEach(func() {
			config = CategoryConfig{
				AgedBrieNames:      []string{"Aged Brie", "Aged Gouda"},
				BackstagePassNames: []string{"Backstage passes to a Metallica concert"},
				SulfurasNames:      []string{"Sulfuras, Hand of Ragnaros", "Thunderfury"},
			}
		})

		It("should classify the extra names", func() {
			Expect(ClassifyWith("Aged Gouda", config)).To(Equal(CategoryAgedBrie))
			Expect(ClassifyWith("Backstage passes to a Metallica concert", config)).To(Equal(CategoryBackstagePasses))
			Expect(ClassifyWith("Thunderfury", config)).To(Equal(CategorySulfuras))
		})

		It("should drop names that are not listed", func() {
			Expect(ClassifyWith("Backstage passes to a TAFKAL80ETC concert", config)).To(Equal(CategoryNormal))
		})

		It("should classify everything as normal with an empty config", func() {
			Expect(ClassifyWith("Aged Brie", CategoryConfig{})).To(Equal(CategoryNormal))
		})
	})
})

var _ = Describe("CategoryConfig", func() {
	It("should return the default names", func() {
		config := DefaultCategoryConfig()
		Expect(config.AgedBrieNames).To(Equal([]string{AgedBrieName}))
		Expect(config.BackstagePassNames).To(Equal([]string{BackstagePassName}))
		Expect(config.SulfurasNames).To(Equal([]string{SulfurasName}))
		Expect(config.Validate()).To(Succeed())
	})

	It("should reject an empty name", func() {
		config := CategoryConfig{AgedBrieNames: []string{""}}
		Expect(config.Validate()).To(MatchError(errEmptyCategoryName))
	})

	It("should reject a name listed under two categories", func() {
		config := CategoryConfig{
			AgedBrieNames: []string{"Aged Brie"},
			SulfurasNames: []string{"Aged Brie"},
		}
		Expect(config.Validate()).To(MatchError(errDuplicateCategoryName))
	})

	It("should accept a name repeated within one category", func() {
		config := CategoryConfig{AgedBrieNames: []string{"Aged Brie", "Aged Brie"}}
		Expect(config.Validate()).To(Succeed())
	})
})

var _ = Describe("Category", func() {
	It("should only treat Sulfuras as legendary", func() {
		for _, c := range Categories() {
			Expect(c.IsLegendary()).To(Equal(c == CategorySulfuras), string(c))
		}
	})
})
