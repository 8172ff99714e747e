// Package categorizer assigns spending categories to bank and card
// statement rows. Categorization is deterministic: an ordered rule set is
// evaluated first, then amount and keyword heuristics, and every input
// resolves to some category with CategoryOther as the catch-all.
package categorizer

// Category is one label from the closed spending-category set.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// CategoryOrder is the order in which rule categories are evaluated.
// First category with a matching pattern wins, so this order is part of the
// classifier's contract and must not be rederived from a map.
var CategoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHealth,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryEducation,
}

// AllCategories lists every valid category including the fallback.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHealth,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryEducation,
	CategoryOther,
}

// ParseCategory maps a string to a Category. Unknown values map to
// CategoryOther, mirroring how uncategorized rows are stored.
func ParseCategory(s string) Category {
	for _, c := range AllCategories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
