package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingList is the single active list a user assembles recipe
// ingredients into. Created lazily the first time ingredients are added.
type ShoppingList struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"size:255" json:"name,omitempty"`
	UserID string `gorm:"size:128;not null;uniqueIndex" json:"user_id"`

	User  *User              `gorm:"foreignKey:UserID" json:"-"`
	Items []ShoppingListItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ShoppingListItem is a value snapshot of a recipe ingredient line. It
// deliberately copies the ingredient name instead of referencing the
// catalog, so editing a recipe later never rewrites an existing list.
type ShoppingListItem struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`
	ShoppingListID string  `gorm:"size:36;not null;index" json:"-"`
	IngredientName string  `gorm:"size:255;not null" json:"ingredientName"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `gorm:"size:50" json:"unit"`
	IsPurchased    bool    `gorm:"not null;default:false" json:"isPurchased"`
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
