package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeIngredientHandler exposes the ingredient lines of recipes.
type RecipeIngredientHandler struct {
	lines *service.RecipeIngredientService
}

func NewRecipeIngredientHandler(lines *service.RecipeIngredientService) *RecipeIngredientHandler {
	return &RecipeIngredientHandler{lines: lines}
}

// CreateRecipeIngredient godoc
// @Summary      Add an ingredient line to a recipe
// @Tags         recipe-ingredients
// @Accept       json
// @Produce      json
// @Param        input body service.CreateRecipeIngredientInput true "Line Info"
// @Success      201  {object}  models.RecipeIngredient
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe-ingredients [post]
func (h *RecipeIngredientHandler) CreateRecipeIngredient(c *gin.Context) {
	var input service.CreateRecipeIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.lines.CreateRecipeIngredient(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// GetIngredientsForRecipe godoc
// @Summary      List the ingredient lines of a recipe
// @Tags         recipe-ingredients
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Success      200  {array}   models.RecipeIngredient
// @Failure      500  {object}  ErrorResponse
// @Router       /recipe-ingredients/recipe/{recipeId} [get]
func (h *RecipeIngredientHandler) GetIngredientsForRecipe(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	lines, err := h.lines.GetAllIngredientsForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// GetRecipeIngredient godoc
// @Summary      Get one ingredient line
// @Tags         recipe-ingredients
// @Produce      json
// @Param        id path int true "Recipe Ingredient ID"
// @Success      200  {object}  models.RecipeIngredient
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe-ingredients/{id} [get]
func (h *RecipeIngredientHandler) GetRecipeIngredient(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	line, err := h.lines.GetIngredientByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// UpdateRecipeIngredient godoc
// @Summary      Update an ingredient line
// @Tags         recipe-ingredients
// @Accept       json
// @Produce      json
// @Param        id path int true "Recipe Ingredient ID"
// @Param        input body service.UpdateRecipeIngredientInput true "Fields to update"
// @Success      200  {object}  models.RecipeIngredient
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe-ingredients/{id} [put]
func (h *RecipeIngredientHandler) UpdateRecipeIngredient(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input service.UpdateRecipeIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.lines.UpdateRecipeIngredient(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// DeleteRecipeIngredient godoc
// @Summary      Remove an ingredient line
// @Tags         recipe-ingredients
// @Produce      json
// @Param        id path int true "Recipe Ingredient ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /recipe-ingredients/{id} [delete]
func (h *RecipeIngredientHandler) DeleteRecipeIngredient(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.lines.DeleteRecipeIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe ingredient deleted successfully"})
}
