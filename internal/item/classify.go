package item

// Classify returns the category of an item name using the default names.
func Classify(name string) Category {
	return ClassifyWith(name, DefaultCategoryConfig())
}

// ClassifyWith determines the category of an item name by exact match against
// the config's name lists, checked in the order Sulfuras, Aged Brie,
// Backstage passes. Anything unlisted is CategoryNormal.
//
// Matching is exact: "Backstage passes to a Metallica concert" is a normal item
// unless the config lists it.
func ClassifyWith(name string, config CategoryConfig) Category {
	for _, group := range config.groups() {
		if matchName(name, group.names) {
			return group.category
		}
	}
	return CategoryNormal
}

func matchName(name string, names []string) bool {
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}
