package models

import "time"

// Favorite bookmarks a recipe for a user. Same uniqueness rule as Like.
type Favorite struct {
	ID        uint      `gorm:"primaryKey;column:id_favorite" json:"id_favorite"`
	UserID    string    `gorm:"size:128;not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
