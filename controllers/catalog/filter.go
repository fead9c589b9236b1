package catalogControllers

import (
	"strings"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

// matchesCategory reports whether a product passes the category filter.
// An empty filter and "all" match everything.
func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == models.CategoryAll || p.Category == category
}

// matchesSearch reports whether a product passes the text filter. The Latin
// title matches as a case-insensitive substring; the Arabic title matches
// case-sensitively, since case folding is undefined for that script.
func matchesSearch(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	folded := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), folded) {
		return true
	}
	return p.TitleAR != "" && strings.Contains(p.TitleAR, query)
}

func filterProducts(products []models.Product, category, query string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, category) && matchesSearch(p, query) {
			out = append(out, p)
		}
	}
	return out
}
