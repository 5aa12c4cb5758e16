package service

import (
	"context"
	"strings"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IngredientService manages the global ingredient catalog.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// NormalizeIngredientName lowercases the name and strips every whitespace
// character, so "Aceite de Oliva" and "aceitedeoliva " collide.
func NormalizeIngredientName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// GetAllIngredients lists the whole catalog.
func (s *IngredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		logger.Log.Error("failed to list ingredients", zap.Error(err))
		return nil, internalf("could not list ingredients")
	}
	return ingredients, nil
}

// GetIngredientsByName lists catalog entries whose name contains the
// given substring.
func (s *IngredientService) GetIngredientsByName(ctx context.Context, name string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Find(&ingredients).Error
	if err != nil {
		logger.Log.Error("failed to search ingredients", zap.Error(err))
		return nil, internalf("could not search ingredients")
	}
	return ingredients, nil
}

// CreateIngredient adds a catalog entry. The duplicate check runs on the
// normalized name; the stored row keeps the name exactly as submitted.
func (s *IngredientService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}

	normalized := NormalizeIngredientName(name)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("LOWER(REPLACE(name, ' ', '')) = ?", normalized).
		Count(&count).Error
	if err != nil {
		logger.Log.Error("failed to check ingredient name", zap.Error(err))
		return nil, internalf("could not create ingredient")
	}
	if count > 0 {
		return nil, conflictf("ingredient %q already exists", name)
	}

	ingredient := models.Ingredient{Name: name}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		logger.Log.Error("failed to create ingredient", zap.Error(err))
		return nil, internalf("could not create ingredient, please retry")
	}
	return &ingredient, nil
}

// DeleteIngredient removes a catalog entry.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		logger.Log.Error("failed to delete ingredient", zap.Uint("ingredient_id", id), zap.Error(result.Error))
		return internalf("could not delete ingredient")
	}
	if result.RowsAffected == 0 {
		return notFoundf("ingredient %d", id)
	}
	return nil
}
