package service

import (
	"context"
	"strings"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeService manages recipes and their discovery queries.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type CreateRecipeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	UserID      string `json:"user_id"`
}

type UpdateRecipeInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsPublic    *bool   `json:"is_public"`
}

// RecipeFilter is the conjunctive filter for public recipe discovery.
// Zero values mean "no constraint".
type RecipeFilter struct {
	Title           string
	MaxSteps        int
	MaxIngredients  int
	FollowedUserIDs []string
}

// CreateRecipe persists a new recipe for the given owner. The owner is
// referenced by id only; a dangling reference fails on the foreign key and
// surfaces as a validation error.
func (s *RecipeService) CreateRecipe(ctx context.Context, in CreateRecipeInput) (*models.Recipe, error) {
	if in.UserID == "" {
		return nil, validationf("user_id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationf("title is required and cannot be blank")
	}

	recipe := models.Recipe{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		UserID:      in.UserID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		logger.Log.Error("failed to create recipe", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, validationf("could not create recipe, please retry")
	}
	return &recipe, nil
}

// UpdateRecipe merges the provided fields onto the stored recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, in UpdateRecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, notFoundf("recipe %d", id)
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Image != nil {
		recipe.Image = *in.Image
	}
	if in.IsPublic != nil {
		recipe.IsPublic = *in.IsPublic
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		logger.Log.Error("failed to update recipe", zap.Uint("recipe_id", id), zap.Error(err))
		return nil, validationf("could not update recipe, please retry")
	}
	return &recipe, nil
}

// withListRelations joins everything the recipe feeds render: ingredient
// lines, steps, owner, and likes with their users.
func withListRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		Preload("Steps").
		Preload("User").
		Preload("Likes").
		Preload("Likes.User")
}

// GetAllRecipes returns every recipe, public or not, fully joined.
func (s *RecipeService) GetAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := withListRelations(s.db.WithContext(ctx)).Find(&recipes).Error; err != nil {
		logger.Log.Error("failed to list recipes", zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}

// GetPublicRecipes returns every public recipe, fully joined.
func (s *RecipeService) GetPublicRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := withListRelations(s.db.WithContext(ctx)).
		Where("is_public = ?", true).
		Find(&recipes).Error
	if err != nil {
		logger.Log.Error("failed to list public recipes", zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}

// GetUserPublicRecipes returns the public recipes owned by one user.
func (s *RecipeService) GetUserPublicRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := withListRelations(s.db.WithContext(ctx)).
		Where("is_public = ? AND user_id = ?", true, userID).
		Find(&recipes).Error
	if err != nil {
		logger.Log.Error("failed to list user public recipes", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}

// SearchRecipesByTitle does a substring match on the title. No relations
// are loaded; this backs the search-as-you-type box.
func (s *RecipeService) SearchRecipesByTitle(ctx context.Context, title string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("title LIKE ?", "%"+title+"%").
		Find(&recipes).Error
	if err != nil {
		logger.Log.Error("failed to search recipes", zap.Error(err))
		return nil, internalf("could not search recipes")
	}
	return recipes, nil
}

// GetRecipesByUserID returns all recipes of one user, joined with
// ingredients, steps and owner.
func (s *RecipeService) GetRecipesByUserID(ctx context.Context, userID string) ([]models.Recipe, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		Preload("Steps").
		Preload("User").
		Where("user_id = ?", userID).
		Find(&recipes).Error
	if err != nil {
		logger.Log.Error("failed to list user recipes", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}

// GetRecipeByID returns one recipe with its steps and ingredient lines.
func (s *RecipeService) GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Steps").
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		Preload("User").
		First(&recipe, id).Error
	if err != nil {
		return nil, notFoundf("recipe %d", id)
	}
	return &recipe, nil
}

// DeleteRecipe removes the recipe; ingredient lines and steps go with it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return notFoundf("recipe %d", id)
	}

	if err := s.db.WithContext(ctx).Select("RecipeIngredients", "Steps", "Likes", "Favorites").Delete(&recipe).Error; err != nil {
		logger.Log.Error("failed to delete recipe", zap.Uint("recipe_id", id), zap.Error(err))
		return internalf("could not delete recipe")
	}
	return nil
}

// GetFilteredPublicRecipes applies the optional filters conjunctively over
// the public recipe set. With no filters set it is GetPublicRecipes.
func (s *RecipeService) GetFilteredPublicRecipes(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error) {
	query := withListRelations(s.db.WithContext(ctx)).Where("is_public = ?", true)

	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.MaxSteps > 0 {
		query = query.Where(
			"(SELECT COUNT(*) FROM steps WHERE steps.recipe_id = recipes.id_recipe) <= ?",
			filter.MaxSteps,
		)
	}
	if filter.MaxIngredients > 0 {
		query = query.Where(
			"(SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_ingredients.recipe_id = recipes.id_recipe) <= ?",
			filter.MaxIngredients,
		)
	}
	if len(filter.FollowedUserIDs) > 0 {
		query = query.Where("user_id IN ?", filter.FollowedUserIDs)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		logger.Log.Error("failed to filter public recipes", zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}

// GetPublicRecipesByFollowing returns the public recipes of the users the
// given user follows. Following nobody yields an empty feed, not the
// global one.
func (s *RecipeService) GetPublicRecipesByFollowing(ctx context.Context, userID string) ([]models.Recipe, error) {
	var follows []models.Follow
	err := s.db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		logger.Log.Error("failed to resolve followed users", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list recipes")
	}

	if len(follows) == 0 {
		return []models.Recipe{}, nil
	}

	followedIDs := make([]string, 0, len(follows))
	for _, f := range follows {
		followedIDs = append(followedIDs, f.FollowedID)
	}

	var recipes []models.Recipe
	err = s.db.WithContext(ctx).
		Preload("User").
		Where("is_public = ? AND user_id IN ?", true, followedIDs).
		Find(&recipes).Error
	if err != nil {
		logger.Log.Error("failed to list followed recipes", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list recipes")
	}
	return recipes, nil
}
