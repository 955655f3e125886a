// Package fixture loads item fixtures: YAML documents listing the items an
// Inventory starts with and, optionally, extra names per category.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/llm-d/gilded-rose/internal/item"
)

//go:embed default.yaml
var defaultFixture []byte

// Entry is one item in a fixture. SellIn and Quality are pointers so a
// missing value can be told apart from zero.
type Entry struct {
	Name    string `yaml:"name" json:"name"`
	SellIn  *int   `yaml:"sellIn" json:"sellIn"`
	Quality *int   `yaml:"quality" json:"quality"`
}

// Fixture is a parsed fixture document.
type Fixture struct {
	// Categories lists names to add to each category on top of the defaults.
	Categories item.CategoryConfig `yaml:"categories,omitempty" json:"categories,omitempty"`

	// Items are the starting items, in order.
	Items []Entry `yaml:"items" json:"items"`
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &f, nil
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded standing-stock fixture.
func Default() *Fixture {
	f, err := Parse(defaultFixture)
	if err != nil {
		panic(fmt.Sprintf("embedded default fixture is invalid: %v", err))
	}
	return f
}

// Validate checks that every entry is complete and that the category names
// are consistent. Quality is deliberately not range-checked: the updater
// tolerates out-of-range values and so do fixtures.
func (f *Fixture) Validate() error {
	var errs field.ErrorList
	itemsPath := field.NewPath("items")
	for i, e := range f.Items {
		p := itemsPath.Index(i)
		if e.Name == "" {
			errs = append(errs, field.Required(p.Child("name"), "item name must not be empty"))
		}
		if e.SellIn == nil {
			errs = append(errs, field.Required(p.Child("sellIn"), ""))
		}
		if e.Quality == nil {
			errs = append(errs, field.Required(p.Child("quality"), ""))
		}
	}
	if err := f.CategoryConfig().Validate(); err != nil {
		errs = append(errs, field.Invalid(field.NewPath("categories"), f.Categories, err.Error()))
	}
	return errs.ToAggregate()
}

// ItemList returns the fixture's items, in order. Missing values read as zero.
func (f *Fixture) ItemList() []item.Item {
	out := make([]item.Item, 0, len(f.Items))
	for _, e := range f.Items {
		out = append(out, item.NewItem(e.Name, ptr.Deref(e.SellIn, 0), ptr.Deref(e.Quality, 0)))
	}
	return out
}

// CategoryConfig merges the fixture's extra names over the default names.
func (f *Fixture) CategoryConfig() item.CategoryConfig {
	config := item.DefaultCategoryConfig()
	config.AgedBrieNames = appendMissing(config.AgedBrieNames, f.Categories.AgedBrieNames)
	config.BackstagePassNames = appendMissing(config.BackstagePassNames, f.Categories.BackstagePassNames)
	config.SulfurasNames = appendMissing(config.SulfurasNames, f.Categories.SulfurasNames)
	return config
}

func appendMissing(base, extra []string) []string {
	out := append([]string(nil), base...)
	for _, name := range extra {
		found := false
		for _, existing := range out {
			if existing == name {
				found = true
				break
			}
		}
		if !found {
			out = append(out, name)
		}
	}
	return out
}
