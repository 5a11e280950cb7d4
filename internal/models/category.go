package models

import (
	"fmt"
	"strings"
)

// Category is an optional label drawn from a fixed small set
type Category string

const (
	CategoryNone   Category = ""
	CategoryWork   Category = "Work"
	CategorySport  Category = "Sport"
	CategoryMovie  Category = "Movie"
	CategoryHealth Category = "Health"
	CategoryStudy  Category = "Study"
)

// Categories lists the selectable categories (CategoryNone excluded)
func Categories() []Category {
	return []Category{CategoryWork, CategorySport, CategoryMovie, CategoryHealth, CategoryStudy}
}

// ParseCategory converts user input into a Category. Empty input means no
// category; anything outside the fixed set is an error.
func ParseCategory(input string) (Category, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return CategoryNone, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(input, string(c)) {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q (choose one of: %s)", input, categoryNames())
}

func categoryNames() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Icon returns the emoji shown next to the category in list output
func (c Category) Icon() string {
	switch c {
	case CategoryWork:
		return "📧"
	case CategorySport:
		return "🏋️"
	case CategoryMovie:
		return "🎬"
	case CategoryHealth:
		return "❤️"
	case CategoryStudy:
		return "🎓"
	default:
		return ""
	}
}
