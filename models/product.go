package models

import (
	"time"

	"gorm.io/gorm"
)

// Book categories shown in the storefront. "all" is a filter value only,
// never stored on a product.
const (
	CategoryAll       = "all"
	CategoryGeneral   = "general"
	CategoryReligious = "religious"
	CategoryMushafs   = "mushafs"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"not null" json:"title"` // English title
	TitleAR       string         `json:"title_ar"`              // Arabic title
	TitleFR       string         `json:"title_fr"`              // French title
	Description   string         `json:"description"`
	DescriptionAR string         `json:"description_ar"`
	DescriptionFR string         `json:"description_fr"`
	Price         float64        `gorm:"not null" json:"price"` // TND
	Category      string         `gorm:"not null;index" json:"category"`
	StockQuantity int            `json:"stock_quantity"`
	ImageURL      string         `json:"image_url"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Category is one entry of the fixed bilingual category set.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAR string `json:"name_ar"`
}

// Categories returns the storefront's category filters, "all" first.
func Categories() []Category {
	return []Category{
		{ID: CategoryAll, Name: "All Books", NameAR: "جميع الكتب"},
		{ID: CategoryGeneral, Name: "General Books", NameAR: "كتب عامة"},
		{ID: CategoryReligious, Name: "Religious Books", NameAR: "كتب دينية"},
		{ID: CategoryMushafs, Name: "Mushafs", NameAR: "مصاحف"},
	}
}
