package service

import (
	"context"
	"strings"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StepsService manages the ordered instruction list of a recipe.
type StepsService struct {
	db *gorm.DB
}

func NewStepsService(db *gorm.DB) *StepsService {
	return &StepsService{db: db}
}

type CreateStepInput struct {
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateStepInput struct {
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

// CreateStep appends an instruction to a recipe.
func (s *StepsService) CreateStep(ctx context.Context, recipeID uint, in CreateStepInput) (*models.Step, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		return nil, notFoundf("recipe %d", recipeID)
	}

	if strings.TrimSpace(in.Description) == "" || in.Order == 0 {
		return nil, validationf("description and order are required")
	}

	step := models.Step{
		RecipeID:    recipeID,
		Description: in.Description,
		Order:       in.Order,
	}
	if err := s.db.WithContext(ctx).Create(&step).Error; err != nil {
		logger.Log.Error("failed to create step", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, internalf("could not create step, please retry")
	}
	return &step, nil
}

// GetStepsByRecipe returns the steps of a recipe in ascending order.
func (s *StepsService) GetStepsByRecipe(ctx context.Context, recipeID uint) ([]models.Step, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		return nil, notFoundf("recipe %d", recipeID)
	}

	var steps []models.Step
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_order ASC").
		Find(&steps).Error
	if err != nil {
		logger.Log.Error("failed to list steps", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, internalf("could not list steps")
	}
	return steps, nil
}

// UpdateStep merges the provided fields onto the stored step, scoped to
// its recipe.
func (s *StepsService) UpdateStep(ctx context.Context, recipeID, stepID uint, in UpdateStepInput) (*models.Step, error) {
	var step models.Step
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		First(&step, stepID).Error
	if err != nil {
		return nil, notFoundf("step %d in recipe %d", stepID, recipeID)
	}

	if in.Description != nil {
		step.Description = *in.Description
	}
	if in.Order != nil {
		step.Order = *in.Order
	}

	if err := s.db.WithContext(ctx).Save(&step).Error; err != nil {
		logger.Log.Error("failed to update step", zap.Uint("step_id", stepID), zap.Error(err))
		return nil, internalf("could not update step, please retry")
	}
	return &step, nil
}

// DeleteStep removes a step scoped to its recipe.
func (s *StepsService) DeleteStep(ctx context.Context, stepID, recipeID uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		return notFoundf("recipe %d", recipeID)
	}

	result := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&models.Step{}, stepID)
	if result.Error != nil {
		logger.Log.Error("failed to delete step", zap.Uint("step_id", stepID), zap.Error(result.Error))
		return internalf("could not delete step")
	}
	if result.RowsAffected == 0 {
		return notFoundf("step %d in recipe %d", stepID, recipeID)
	}
	return nil
}

// DeleteStepByID removes a step by id regardless of recipe.
func (s *StepsService) DeleteStepByID(ctx context.Context, stepID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Step{}, stepID)
	if result.Error != nil {
		logger.Log.Error("failed to delete step", zap.Uint("step_id", stepID), zap.Error(result.Error))
		return internalf("could not delete step")
	}
	if result.RowsAffected == 0 {
		return notFoundf("step %d", stepID)
	}
	return nil
}
