package service

import (
	"context"
	"fmt"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LikeService manages likes and the pushes they trigger.
type LikeService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewLikeService(db *gorm.DB, notifier Notifier) *LikeService {
	return &LikeService{db: db, notifier: notifier}
}

// CreateLike records that a user likes a recipe and pushes a notification
// to the recipe owner. Notification failures are logged, never surfaced.
func (s *LikeService) CreateLike(ctx context.Context, userID string, recipeID uint) (*models.Like, error) {
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
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		logger.Log.Error("failed to check like", zap.Error(err))
		return nil, internalf("could not like recipe")
	}
	if count > 0 {
		return nil, conflictf("user %s already likes recipe %d", userID, recipeID)
	}

	like := models.Like{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflictf("user %s already likes recipe %d", userID, recipeID)
		}
		logger.Log.Error("failed to create like", zap.Error(err))
		return nil, internalf("could not like recipe, please retry")
	}

	s.notifyOwner(ctx, &recipe, &user)
	return &like, nil
}

func (s *LikeService) notifyOwner(ctx context.Context, recipe *models.Recipe, liker *models.User) {
	if s.notifier == nil || recipe.User == nil {
		return
	}
	owner := recipe.User
	if owner.ID == liker.ID || owner.NotificationToken == "" {
		return
	}
	body := fmt.Sprintf("%s liked your recipe %s", liker.Username, recipe.Title)
	if err := s.notifier.Send(ctx, owner.NotificationToken, "New like", body); err != nil {
		logger.Log.Warn("failed to push like notification",
			zap.String("owner_id", owner.ID), zap.Error(err))
	}
}

// RemoveLike deletes the like of a user on a recipe.
func (s *LikeService) RemoveLike(ctx context.Context, userID string, recipeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Like{})
	if result.Error != nil {
		logger.Log.Error("failed to delete like", zap.Error(result.Error))
		return internalf("could not remove like")
	}
	if result.RowsAffected == 0 {
		return notFoundf("user %s does not like recipe %d", userID, recipeID)
	}
	return nil
}

// CountLikes returns the number of likes on a recipe.
func (s *LikeService) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		return 0, notFoundf("recipe %d", recipeID)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		logger.Log.Error("failed to count likes", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return 0, internalf("could not count likes")
	}
	return count, nil
}

// GetLikesByRecipe lists the likes on a recipe with the liking users.
func (s *LikeService) GetLikesByRecipe(ctx context.Context, recipeID uint) ([]models.Like, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		return nil, notFoundf("recipe %d", recipeID)
	}

	var likes []models.Like
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Find(&likes).Error
	if err != nil {
		logger.Log.Error("failed to list likes", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, internalf("could not list likes")
	}
	return likes, nil
}
