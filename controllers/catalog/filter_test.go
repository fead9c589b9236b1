package catalogControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

var testBooks = []models.Product{
	{ID: 1, Title: "The Quran Translation", TitleAR: "ترجمة القرآن الكريم", Category: models.CategoryMushafs},
	{ID: 2, Title: "Islamic History", TitleAR: "التاريخ الإسلامي", Category: models.CategoryReligious},
	{ID: 3, Title: "Arabic Literature", TitleAR: "الأدب العربي", Category: models.CategoryGeneral},
}

func ids(products []models.Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestCategoryFilter(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, ids(filterProducts(testBooks, models.CategoryAll, "")))
	assert.Equal(t, []uint{1, 2, 3}, ids(filterProducts(testBooks, "", "")))
	assert.Equal(t, []uint{2}, ids(filterProducts(testBooks, models.CategoryReligious, "")))
	assert.Empty(t, ids(filterProducts(testBooks, "cookbooks", "")))
}

func TestSearchLatinCaseInsensitive(t *testing.T) {
	assert.Equal(t, []uint{1}, ids(filterProducts(testBooks, "all", "quran")))
	assert.Equal(t, []uint{1}, ids(filterProducts(testBooks, "all", "QURAN")))
	assert.Equal(t, []uint{2}, ids(filterProducts(testBooks, "all", "history")))
}

func TestSearchArabicCaseSensitiveSubstring(t *testing.T) {
	assert.Equal(t, []uint{1}, ids(filterProducts(testBooks, "all", "القرآن")))
	assert.Equal(t, []uint{3}, ids(filterProducts(testBooks, "all", "الأدب")))
	assert.Empty(t, ids(filterProducts(testBooks, "all", "مجلة")))
}

func TestSearchCombinesWithCategory(t *testing.T) {
	// Matching text but wrong category.
	assert.Empty(t, ids(filterProducts(testBooks, models.CategoryGeneral, "quran")))
	assert.Equal(t, []uint{3}, ids(filterProducts(testBooks, models.CategoryGeneral, "literature")))
}
