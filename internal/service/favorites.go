package service

import (
	"context"
	"fmt"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FavoriteService manages recipe bookmarks and the pushes they trigger.
type FavoriteService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewFavoriteService(db *gorm.DB, notifier Notifier) *FavoriteService {
	return &FavoriteService{db: db, notifier: notifier}
}

// AddFavorite bookmarks a recipe for a user and pushes a notification to
// the recipe owner. Notification failures are logged, never surfaced.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID string, recipeID uint) (*models.Favorite, error) {
	if userID == "" || recipeID == 0 {
		return nil, validationf("user_id and recipe_id are required")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("User").First(&recipe, recipeID).Error; err != nil {
		return nil, notFoundf("recipe %d", recipeID)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		logger.Log.Error("failed to check favorite", zap.Error(err))
		return nil, internalf("could not add favorite")
	}
	if count > 0 {
		return nil, conflictf("recipe %d is already a favorite of user %s", recipeID, userID)
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflictf("recipe %d is already a favorite of user %s", recipeID, userID)
		}
		logger.Log.Error("failed to create favorite", zap.Error(err))
		return nil, internalf("could not add favorite, please retry")
	}

	s.notifyOwner(ctx, &recipe, &user)
	return &favorite, nil
}

func (s *FavoriteService) notifyOwner(ctx context.Context, recipe *models.Recipe, fan *models.User) {
	if s.notifier == nil || recipe.User == nil {
		return
	}
	owner := recipe.User
	if owner.ID == fan.ID || owner.NotificationToken == "" {
		return
	}
	body := fmt.Sprintf("%s saved your recipe %s", fan.Username, recipe.Title)
	if err := s.notifier.Send(ctx, owner.NotificationToken, "New favorite", body); err != nil {
		logger.Log.Warn("failed to push favorite notification",
			zap.String("owner_id", owner.ID), zap.Error(err))
	}
}

// RemoveFavorite deletes the bookmark of a user on a recipe.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID string, recipeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		logger.Log.Error("failed to delete favorite", zap.Error(result.Error))
		return internalf("could not remove favorite")
	}
	if result.RowsAffected == 0 {
		return notFoundf("recipe %d is not a favorite of user %s", recipeID, userID)
	}
	return nil
}

// GetFavoritesByUser lists the bookmarked recipes of a user, fully joined
// for the favorites screen.
func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.User").
		Preload("Recipe.RecipeIngredients").
		Preload("Recipe.RecipeIngredients.Ingredient").
		Preload("Recipe.Steps").
		Where("user_id = ?", userID).
		Find(&favorites).Error
	if err != nil {
		logger.Log.Error("failed to list favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list favorites")
	}
	return favorites, nil
}
