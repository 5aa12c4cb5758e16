package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler exposes the bookmark endpoints.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// FavoriteInput identifies the user/recipe pair of a bookmark.
type FavoriteInput struct {
	UserID   string `json:"user_id" binding:"required"`
	RecipeID uint   `json:"recipe_id" binding:"required"`
}

// AddFavorite godoc
// @Summary      Bookmark a recipe
// @Description  Saves the recipe to the user's favorites and notifies the owner.
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        input body FavoriteInput true "Favorite Info"
// @Success      201  {object}  models.Favorite
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := h.favorites.AddFavorite(c.Request.Context(), input.UserID, input.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// RemoveFavorite godoc
// @Summary      Remove a bookmark
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        input body FavoriteInput true "Favorite Info"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /favorites [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), input.UserID, input.RecipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}

// GetFavoritesByUser godoc
// @Summary      List the bookmarks of a user
// @Tags         favorites
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.Favorite
// @Failure      404  {object}  ErrorResponse
// @Router       /favorites/{userId} [get]
func (h *FavoriteHandler) GetFavoritesByUser(c *gin.Context) {
	favorites, err := h.favorites.GetFavoritesByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}
