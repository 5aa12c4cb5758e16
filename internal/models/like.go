package models

// Like marks that a user liked a recipe. At most one row per (user, recipe),
// enforced by the composite unique index.
type Like struct {
	ID       uint   `gorm:"primaryKey;column:id_like" json:"id_like"`
	UserID   string `gorm:"size:128;not null;uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_like_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
