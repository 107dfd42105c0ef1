package catalog

import "strings"

// DefaultSuggestionLimit caps product suggestions in the typeahead.
const DefaultSuggestionLimit = 5

// categorySuggestionLimit caps the category shortcuts appended after
// product suggestions.
const categorySuggestionLimit = 3

// SuggestionType distinguishes product hits from category shortcuts.
type SuggestionType string

const (
	SuggestionProduct  SuggestionType = "product"
	SuggestionCategory SuggestionType = "category"
)

// Suggestion is one typeahead entry.
type Suggestion struct {
	Type      SuggestionType
	Text      string
	Category  string
	ProductID string
}

// displayCategories are the storefront's browsable category names
// offered as search shortcuts.
var displayCategories = []string{
	"Divine Bags",
	"Sacred Clothes",
	"Hair Accessories",
	"Spiritual Jewelry",
	"Holy Books",
}

// Suggest derives typeahead suggestions for the term: matching products
// first, capped at limit (DefaultSuggestionLimit when limit is not
// positive), then matching category names. Products are matched with
// the same substring predicate as the text filter stage. An empty or
// whitespace-only term yields no suggestions.
func Suggest(products []Product, term string, limit int) []Suggestion {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	out := make([]Suggestion, 0, limit+categorySuggestionLimit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if textMatches(p, term) {
			out = append(out, Suggestion{
				Type:      SuggestionProduct,
				Text:      p.Name,
				Category:  p.Category,
				ProductID: p.ID,
			})
		}
	}

	matched := 0
	for _, name := range displayCategories {
		if matched == categorySuggestionLimit {
			break
		}
		if strings.Contains(strings.ToLower(name), term) {
			out = append(out, Suggestion{
				Type: SuggestionCategory,
				Text: name,
			})
			matched++
		}
	}
	return out
}
