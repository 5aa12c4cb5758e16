package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IngredientHandler exposes the global ingredient catalog.
type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// IngredientInput carries the catalog entry name.
type IngredientInput struct {
	Name string `json:"name" binding:"required" example:"Tomate"`
}

// GetIngredients godoc
// @Summary      List catalog ingredients
// @Description  With ?name= only entries whose name contains the substring.
// @Tags         ingredients
// @Produce      json
// @Param        name query string false "Name substring"
// @Success      200  {array}   models.Ingredient
// @Failure      500  {object}  ErrorResponse
// @Router       /ingredient [get]
func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		ingredients, err := h.ingredients.GetIngredientsByName(c.Request.Context(), name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ingredients)
		return
	}

	ingredients, err := h.ingredients.GetAllIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// CreateIngredient godoc
// @Summary      Add a catalog ingredient
// @Description  Rejects names that collide after lowercasing and stripping whitespace.
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        input body IngredientInput true "Ingredient name"
// @Success      201  {object}  models.Ingredient
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /ingredient [post]
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.CreateIngredient(c.Request.Context(), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// DeleteIngredient godoc
// @Summary      Delete a catalog ingredient
// @Description  Admin only: the catalog is shared by every recipe.
// @Tags         ingredients
// @Produce      json
// @Param        id path int true "Ingredient ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /ingredient/{id} [delete]
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ingredients.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}
