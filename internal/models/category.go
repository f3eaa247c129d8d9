package models

// Transaction category ids. Only the id is written to fixture files; the
// labels document what each id stands for.
const (
	CategoryGroceries     = 1
	CategoryUtilities     = 2
	CategoryEntertainment = 3
	CategoryTransport     = 4
	CategoryHealthcare    = 5
	CategoryDiningOut     = 6
	CategoryEducation     = 7
)

var categoryLabels = map[int]string{
	CategoryGroceries:     "Groceries",
	CategoryUtilities:     "Utilities",
	CategoryEntertainment: "Entertainment",
	CategoryTransport:     "Transport",
	CategoryHealthcare:    "Healthcare",
	CategoryDiningOut:     "Dining Out",
	CategoryEducation:     "Education",
}

// AllCategoryIDs returns all valid category ids in ascending order
func AllCategoryIDs() []int {
	return []int{
		CategoryGroceries,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryTransport,
		CategoryHealthcare,
		CategoryDiningOut,
		CategoryEducation,
	}
}

// CategoryLabel returns the human-readable label for a category id
func CategoryLabel(id int) (string, bool) {
	label, ok := categoryLabels[id]
	return label, ok
}

// IsValidCategoryID checks if a category id is one of the known ids
func IsValidCategoryID(id int) bool {
	_, ok := categoryLabels[id]
	return ok
}
