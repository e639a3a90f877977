package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// EventCategories is the fixed set of category names the catalog accepts.
var EventCategories = []string{
	"Conferences",
	"Trade Shows",
	"Networking",
	"WorkShops",
	"Product Launch",
	"Charity",
	"Music",
	"Concert",
	"Performing & Visual Arts",
	"Food & Drink",
	"Party",
	"Sports & Fitness",
	"Technology",
	"Digital",
}

func ValidCategoryName(name string) bool {
	for _, n := range EventCategories {
		if n == name {
			return true
		}
	}
	return false
}

type Category struct {
	TrackedModel
	Name   string  `gorm:"unique;not null" json:"name"`
	Slug   string  `gorm:"index;not null" json:"slug"`
	Events []Event `gorm:"many2many:event_categories;" json:"-"`
}

// BeforeSave recomputes the slug on every write, so renaming a category
// changes its URL identity.
func (category *Category) BeforeSave(tx *gorm.DB) (err error) {
	category.Slug = slug.Make(category.Name)
	return
}
