package handler

import (
	"net/http"
	"strconv"
	"strings"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler exposes recipe CRUD and the public discovery feeds.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// CreateRecipe godoc
// @Summary      Create a recipe
// @Description  Creates a private recipe owned by the given user.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        input body service.CreateRecipeInput true "Recipe Info"
// @Success      201  {object}  models.Recipe
// @Failure      400  {object}  ErrorResponse
// @Router       /recipe [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var input service.CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// GetAllRecipes godoc
// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   models.Recipe
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe [get]
func (h *RecipeHandler) GetAllRecipes(c *gin.Context) {
	recipes, err := h.recipes.GetAllRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetPublicRecipes godoc
// @Summary      List public recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   models.Recipe
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe/public [get]
func (h *RecipeHandler) GetPublicRecipes(c *gin.Context) {
	recipes, err := h.recipes.GetPublicRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetFilteredPublicRecipes godoc
// @Summary      Filter public recipes
// @Description  Conjunctive filters: title substring, max step count, max
// @Description  ingredient count and owning users. All optional.
// @Tags         recipes
// @Produce      json
// @Param        title query string false "Title substring"
// @Param        maxSteps query int false "Maximum number of steps"
// @Param        maxIngredients query int false "Maximum number of ingredients"
// @Param        userIds query string false "Comma-separated owner ids"
// @Success      200  {array}   models.Recipe
// @Failure      400  {object}  ErrorResponse
// @Router       /recipe/public/filtered [get]
func (h *RecipeHandler) GetFilteredPublicRecipes(c *gin.Context) {
	filter := service.RecipeFilter{Title: c.Query("title")}

	if v := c.Query("maxSteps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxSteps"})
			return
		}
		filter.MaxSteps = n
	}
	if v := c.Query("maxIngredients"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxIngredients"})
			return
		}
		filter.MaxIngredients = n
	}
	if v := c.Query("userIds"); v != "" {
		filter.FollowedUserIDs = strings.Split(v, ",")
	}

	recipes, err := h.recipes.GetFilteredPublicRecipes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetPublicRecipesByFollowing godoc
// @Summary      List public recipes of followed users
// @Description  The feed is empty when the user follows nobody.
// @Tags         recipes
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.Recipe
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe/public/following/{userId} [get]
func (h *RecipeHandler) GetPublicRecipesByFollowing(c *gin.Context) {
	recipes, err := h.recipes.GetPublicRecipesByFollowing(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// SearchRecipes godoc
// @Summary      Search recipes by title
// @Tags         recipes
// @Produce      json
// @Param        title query string true "Title substring"
// @Success      200  {array}   models.Recipe
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe/search [get]
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.recipes.SearchRecipesByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipesByUser godoc
// @Summary      List all recipes of a user
// @Tags         recipes
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.Recipe
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe/user/{userId} [get]
func (h *RecipeHandler) GetRecipesByUser(c *gin.Context) {
	recipes, err := h.recipes.GetRecipesByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetUserPublicRecipes godoc
// @Summary      List the public recipes of a user
// @Tags         recipes
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.Recipe
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe/user/{userId}/public [get]
func (h *RecipeHandler) GetUserPublicRecipes(c *gin.Context) {
	recipes, err := h.recipes.GetUserPublicRecipes(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipeByID godoc
// @Summary      Get a recipe
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200  {object}  models.Recipe
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe/{id} [get]
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe godoc
// @Summary      Update a recipe
// @Description  Merges the provided fields; is_public toggles publication.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Param        input body service.UpdateRecipeInput true "Fields to update"
// @Success      200  {object}  models.Recipe
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe godoc
// @Summary      Delete a recipe
// @Description  Removes the recipe with its ingredient lines and steps.
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
