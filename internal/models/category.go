package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category is not part of the closed set
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies an idea. CategoryAll is only meaningful as a query filter.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryHumor     Category = "humor"
	CategoryTech      Category = "tech"
	CategoryFinance   Category = "finance"
	CategoryFitness   Category = "fitness"
	CategoryEducation Category = "education"
	CategoryLifestyle Category = "lifestyle"
)

var categoryDescriptions = map[Category]string{
	CategoryAll:       "All categories",
	CategoryHumor:     "Humorous and entertaining content",
	CategoryTech:      "Technology-related content",
	CategoryFinance:   "Financial advice and education",
	CategoryFitness:   "Health and fitness content",
	CategoryEducation: "Educational and informative content",
	CategoryLifestyle: "Lifestyle and daily vlog content",
}

// Categories returns every category, including the "all" wildcard, in enumeration order
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryHumor,
		CategoryTech,
		CategoryFinance,
		CategoryFitness,
		CategoryEducation,
		CategoryLifestyle,
	}
}

// ContentCategories returns the categories an idea can actually belong to
func ContentCategories() []Category {
	return Categories()[1:]
}

// ParseCategory normalizes user input into a Category. Empty input means "all".
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, nil
	}

	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is part of the closed category set
func (c Category) Valid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// Description returns a human readable description used in prompts
func (c Category) Description() string {
	if d, ok := categoryDescriptions[c]; ok {
		return d
	}
	return "various topics"
}

func (c Category) String() string {
	return string(c)
}
