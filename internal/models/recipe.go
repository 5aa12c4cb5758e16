package models

import "time"

// Recipe is a user-owned recipe. Private by default; only public recipes
// show up in the discovery endpoints.
type Recipe struct {
	ID          uint   `gorm:"primaryKey;column:id_recipe" json:"id_recipe"`
	UserID      string `gorm:"size:128;not null;index" json:"user_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `json:"description"`
	Image       string `gorm:"size:512" json:"image"`
	IsPublic    bool   `gorm:"not null;default:false" json:"isPublic"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User              *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipeIngredients,omitempty"`
	Steps             []Step             `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Favorites         []Favorite         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Likes             []Like             `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}
