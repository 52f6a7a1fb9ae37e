package classify

import (
	"fmt"
	"strings"

	"github.com/cognicore/parley/pkg/parley/internalerr"
)

// Category is a named issue bucket and the keywords that select it.
// Keywords match as case-sensitive substrings.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultCategories is the built-in support-desk taxonomy.
func DefaultCategories() []Category {
	return []Category{
		{Name: "billing", Keywords: []string{"invoice", "billing", "charge", "payment"}},
		{Name: "technical", Keywords: []string{"error", "problem", "bug", "issue"}},
		{Name: "support", Keywords: []string{"help", "support", "service", "assistance"}},
	}
}

// Classifier evaluates one independent predicate per category.
type Classifier struct {
	categories []Category
}

// New creates a classifier. Category names must be unique and non-empty.
func New(categories []Category) (*Classifier, error) {
	seen := make(map[string]struct{}, len(categories))
	copied := make([]Category, 0, len(categories))
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category with empty name", internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", internalerr.ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}

		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		copied = append(copied, Category{Name: name, Keywords: keywords})
	}
	return &Classifier{categories: copied}, nil
}

// Default returns a classifier over DefaultCategories.
func Default() *Classifier {
	c, _ := New(DefaultCategories())
	return c
}

// Classify returns the name of every category with at least one keyword in
// text. Each category appears at most once, in configuration order.
func (c *Classifier) Classify(text string) []string {
	var matched []string
	for _, cat := range c.categories {
		if cat.matches(text) {
			matched = append(matched, cat.Name)
		}
	}
	return matched
}

// Categories returns the configured categories.
func (c *Classifier) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (cat Category) matches(text string) bool {
	for _, kw := range cat.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
