package service

import (
	"context"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeIngredientService manages the ingredient lines of a recipe.
type RecipeIngredientService struct {
	db *gorm.DB
}

func NewRecipeIngredientService(db *gorm.DB) *RecipeIngredientService {
	return &RecipeIngredientService{db: db}
}

type CreateRecipeIngredientInput struct {
	RecipeID     uint    `json:"recipe_id"`
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type UpdateRecipeIngredientInput struct {
	IngredientID *uint    `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
}

// CreateRecipeIngredient links a catalog ingredient to a recipe.
func (s *RecipeIngredientService) CreateRecipeIngredient(ctx context.Context, in CreateRecipeIngredientInput) (*models.RecipeIngredient, error) {
	if in.RecipeID == 0 || in.IngredientID == 0 {
		return nil, validationf("recipe_id and ingredient_id are required")
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, in.RecipeID).Error; err != nil {
		return nil, notFoundf("recipe %d", in.RecipeID)
	}
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, in.IngredientID).Error; err != nil {
		return nil, notFoundf("ingredient %d", in.IngredientID)
	}

	line := models.RecipeIngredient{
		RecipeID:     in.RecipeID,
		IngredientID: in.IngredientID,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
	}
	if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
		logger.Log.Error("failed to create recipe ingredient", zap.Uint("recipe_id", in.RecipeID), zap.Error(err))
		return nil, internalf("could not add ingredient to recipe, please retry")
	}
	line.Ingredient = &ingredient
	return &line, nil
}

// GetAllIngredientsForRecipe lists the ingredient lines of a recipe with
// the catalog ingredient joined in.
func (s *RecipeIngredientService) GetAllIngredientsForRecipe(ctx context.Context, recipeID uint) ([]models.RecipeIngredient, error) {
	var lines []models.RecipeIngredient
	err := s.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&lines).Error
	if err != nil {
		logger.Log.Error("failed to list recipe ingredients", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, internalf("could not list recipe ingredients")
	}
	return lines, nil
}

// GetIngredientByID returns one ingredient line by its own id.
func (s *RecipeIngredientService) GetIngredientByID(ctx context.Context, id uint) (*models.RecipeIngredient, error) {
	var line models.RecipeIngredient
	err := s.db.WithContext(ctx).
		Preload("Ingredient").
		First(&line, id).Error
	if err != nil {
		return nil, notFoundf("recipe ingredient %d", id)
	}
	return &line, nil
}

// UpdateRecipeIngredient retargets the catalog reference and/or changes
// quantity and unit.
func (s *RecipeIngredientService) UpdateRecipeIngredient(ctx context.Context, id uint, in UpdateRecipeIngredientInput) (*models.RecipeIngredient, error) {
	var line models.RecipeIngredient
	if err := s.db.WithContext(ctx).Preload("Ingredient").First(&line, id).Error; err != nil {
		return nil, notFoundf("recipe ingredient %d", id)
	}

	if in.IngredientID != nil {
		var ingredient models.Ingredient
		if err := s.db.WithContext(ctx).First(&ingredient, *in.IngredientID).Error; err != nil {
			return nil, notFoundf("ingredient %d", *in.IngredientID)
		}
		line.IngredientID = *in.IngredientID
		line.Ingredient = &ingredient
	}
	if in.Quantity != nil {
		line.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		line.Unit = *in.Unit
	}

	if err := s.db.WithContext(ctx).Save(&line).Error; err != nil {
		logger.Log.Error("failed to update recipe ingredient", zap.Uint("id", id), zap.Error(err))
		return nil, internalf("could not update recipe ingredient, please retry")
	}
	return &line, nil
}

// DeleteRecipeIngredient removes one ingredient line.
func (s *RecipeIngredientService) DeleteRecipeIngredient(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RecipeIngredient{}, id)
	if result.Error != nil {
		logger.Log.Error("failed to delete recipe ingredient", zap.Uint("id", id), zap.Error(result.Error))
		return internalf("could not delete recipe ingredient")
	}
	if result.RowsAffected == 0 {
		return notFoundf("recipe ingredient %d", id)
	}
	return nil
}
