package models

// Step is one instruction of a recipe. Order starts at 1 and sequences the
// steps within their recipe.
type Step struct {
	ID          uint   `gorm:"primaryKey;column:id_steps" json:"id_steps"`
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`
	Description string `gorm:"not null" json:"description"`
	Order       int    `gorm:"column:step_order;not null" json:"order"`
}
