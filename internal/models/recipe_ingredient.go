package models

// RecipeIngredient links a catalog ingredient to a recipe with an amount.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey;column:id_recipe_ingredient" json:"id_recipe_ingredient"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null" json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `gorm:"size:50" json:"unit"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
