package valueobjects

import "fmt"

// Category classifies what a complaint is about.
type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryTechnical Category = "technical"
	CategoryPayment   Category = "payment"
	CategoryService   Category = "service"
)

func NewCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid complaint category: %s", value)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryTechnical, CategoryPayment, CategoryService:
		return true
	}
	return false
}

// AllCategories returns every valid category value.
func AllCategories() []Category {
	return []Category{CategoryGeneral, CategoryTechnical, CategoryPayment, CategoryService}
}
