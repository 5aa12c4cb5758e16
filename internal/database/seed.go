package database

import (
	"topreceit/backend/internal/models"

	"gorm.io/gorm"
)

var baseIngredients = []string{
	"tomate", "cebolla", "ajo", "pimiento", "patata", "zanahoria",
	"arroz", "pasta", "harina", "huevo", "leche", "mantequilla",
	"aceite de oliva", "sal", "pimienta", "azúcar", "pollo", "ternera",
	"cerdo", "merluza", "atún", "gambas", "queso", "nata",
	"limón", "perejil", "albahaca", "orégano", "laurel", "pimentón",
}

// SeedIngredients populates the ingredient catalog on first boot. A
// non-empty catalog is left untouched.
func SeedIngredients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ingredients := make([]models.Ingredient, 0, len(baseIngredients))
	for _, name := range baseIngredients {
		ingredients = append(ingredients, models.Ingredient{Name: name})
	}
	return db.Create(&ingredients).Error
}
