package service

import (
	"context"
	"errors"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShoppingListService manages the single per-user shopping list. The list
// is created lazily on the first ingredient-add; items are denormalized snapshots of
// recipe ingredient lines, so later recipe edits leave the list untouched.
type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

// findList resolves the user's list. A user who has never added recipe
// ingredients has no list, which is NotFound, not an empty list.
func (s *ShoppingListService) findList(ctx context.Context, userID string) (*models.ShoppingList, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	var list models.ShoppingList
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&list).Error
	if err != nil {
		return nil, notFoundf("shopping list for user %s", userID)
	}
	return &list, nil
}

// getOrCreateList returns the user's list, creating it if absent. Only the
// ingredient-add path may create the list.
func (s *ShoppingListService) getOrCreateList(ctx context.Context, userID string) (*models.ShoppingList, error) {
	list, err := s.findList(ctx, userID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	created := models.ShoppingList{Name: "Shopping list", UserID: userID}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		logger.Log.Error("failed to create shopping list", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not create shopping list")
	}
	return &created, nil
}

// GetShoppingList returns the user's list with its items.
func (s *ShoppingListService) GetShoppingList(ctx context.Context, userID string) (*models.ShoppingList, error) {
	list, err := s.findList(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Preload("Items").
		First(list, "id = ?", list.ID).Error
	if err != nil {
		logger.Log.Error("failed to load shopping list", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not load shopping list")
	}
	if list.Items == nil {
		list.Items = []models.ShoppingListItem{}
	}
	return list, nil
}

// AddRecipeToShoppingList appends one item per ingredient line of the
// recipe. Lines are never merged: adding the same recipe twice doubles
// the items.
func (s *ShoppingListService) AddRecipeToShoppingList(ctx context.Context, userID string, recipeID uint) (*models.ShoppingList, error) {
	list, err := s.getOrCreateList(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	err = s.db.WithContext(ctx).
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		First(&recipe, recipeID).Error
	if err != nil {
		return nil, notFoundf("recipe %d", recipeID)
	}

	items := make([]models.ShoppingListItem, 0, len(recipe.RecipeIngredients))
	for _, line := range recipe.RecipeIngredients {
		name := ""
		if line.Ingredient != nil {
			name = line.Ingredient.Name
		}
		items = append(items, models.ShoppingListItem{
			ShoppingListID: list.ID,
			IngredientName: name,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
		})
	}
	if len(items) > 0 {
		if err := s.db.WithContext(ctx).Create(&items).Error; err != nil {
			logger.Log.Error("failed to append shopping list items",
				zap.String("user_id", userID), zap.Uint("recipe_id", recipeID), zap.Error(err))
			return nil, internalf("could not add recipe to shopping list")
		}
	}

	return s.GetShoppingList(ctx, userID)
}

// RemoveShoppingListItem deletes one item from the user's list.
func (s *ShoppingListService) RemoveShoppingListItem(ctx context.Context, userID, itemID string) error {
	list, err := s.findList(ctx, userID)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("shopping_list_id = ? AND id = ?", list.ID, itemID).
		Delete(&models.ShoppingListItem{})
	if result.Error != nil {
		logger.Log.Error("failed to delete shopping list item", zap.String("item_id", itemID), zap.Error(result.Error))
		return internalf("could not remove shopping list item")
	}
	if result.RowsAffected == 0 {
		return notFoundf("shopping list item %s", itemID)
	}
	return nil
}

// ClearShoppingList removes every item but keeps the list row.
func (s *ShoppingListService) ClearShoppingList(ctx context.Context, userID string) error {
	list, err := s.findList(ctx, userID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).
		Where("shopping_list_id = ?", list.ID).
		Delete(&models.ShoppingListItem{}).Error
	if err != nil {
		logger.Log.Error("failed to clear shopping list", zap.String("user_id", userID), zap.Error(err))
		return internalf("could not clear shopping list")
	}
	return nil
}

// ToggleItemPurchased flips the purchased flag of one item and returns
// the updated item.
func (s *ShoppingListService) ToggleItemPurchased(ctx context.Context, userID, itemID string) (*models.ShoppingListItem, error) {
	list, err := s.findList(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item models.ShoppingListItem
	err = s.db.WithContext(ctx).
		Where("shopping_list_id = ? AND id = ?", list.ID, itemID).
		First(&item).Error
	if err != nil {
		return nil, notFoundf("shopping list item %s", itemID)
	}

	item.IsPurchased = !item.IsPurchased
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		logger.Log.Error("failed to toggle shopping list item", zap.String("item_id", itemID), zap.Error(err))
		return nil, internalf("could not update shopping list item")
	}
	return &item, nil
}
