package models

// Ingredient is an entry in the global ingredient catalog. Duplicate
// detection compares names in normalized form (lowercased, whitespace
// stripped); the stored name keeps the casing the client sent.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey;column:id_ingredient" json:"id_ingredient"`
	Name string `gorm:"size:255;not null" json:"name"`

	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:IngredientID" json:"-"`
}
