package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler exposes the per-user shopping list.
type ShoppingListHandler struct {
	lists *service.ShoppingListService
}

func NewShoppingListHandler(lists *service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{lists: lists}
}

// GetShoppingList godoc
// @Summary      Get the user's shopping list
// @Description  404 until the first recipe ingredients are added.
// @Tags         shopping-lists
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.ShoppingList
// @Failure      404  {object}  ErrorResponse
// @Router       /shopping-lists/get-shopping-list/{userId} [get]
func (h *ShoppingListHandler) GetShoppingList(c *gin.Context) {
	list, err := h.lists.GetShoppingList(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddRecipeIngredients godoc
// @Summary      Add a recipe's ingredients to the shopping list
// @Description  Appends one item per ingredient line; items are never merged.
// @Tags         shopping-lists
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        recipeId path int true "Recipe ID"
// @Success      200  {object}  models.ShoppingList
// @Failure      404  {object}  ErrorResponse
// @Router       /shopping-lists/add-recipe-ingredients/{userId}/{recipeId} [post]
func (h *ShoppingListHandler) AddRecipeIngredients(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	list, err := h.lists.AddRecipeToShoppingList(c.Request.Context(), c.Param("userId"), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ClearShoppingList godoc
// @Summary      Remove every item from the shopping list
// @Tags         shopping-lists
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /shopping-lists/clear-shopping-list/{userId} [delete]
func (h *ShoppingListHandler) ClearShoppingList(c *gin.Context) {
	if err := h.lists.ClearShoppingList(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list cleared successfully"})
}

// RemoveItem godoc
// @Summary      Remove one item from the shopping list
// @Tags         shopping-lists
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        itemId path string true "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /shopping-lists/remove-item/{userId}/{itemId} [delete]
func (h *ShoppingListHandler) RemoveItem(c *gin.Context) {
	err := h.lists.RemoveShoppingListItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}

// ToggleItemPurchased godoc
// @Summary      Toggle the purchased flag of an item
// @Tags         shopping-lists
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        itemId path string true "Item ID"
// @Success      200  {object}  models.ShoppingListItem
// @Failure      404  {object}  ErrorResponse
// @Router       /shopping-lists/toggle-item-purchased/{userId}/{itemId} [patch]
func (h *ShoppingListHandler) ToggleItemPurchased(c *gin.Context) {
	item, err := h.lists.ToggleItemPurchased(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
