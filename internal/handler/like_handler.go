package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LikeHandler exposes the like endpoints.
type LikeHandler struct {
	likes *service.LikeService
}

func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// LikeInput identifies the user/recipe pair of a like.
type LikeInput struct {
	UserID   string `json:"user_id" binding:"required"`
	RecipeID uint   `json:"recipe_id" binding:"required"`
}

// CreateLike godoc
// @Summary      Like a recipe
// @Description  Records the like and notifies the recipe owner.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        input body LikeInput true "Like Info"
// @Success      201  {object}  models.Like
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /likes [post]
func (h *LikeHandler) CreateLike(c *gin.Context) {
	var input LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	like, err := h.likes.CreateLike(c.Request.Context(), input.UserID, input.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// RemoveLike godoc
// @Summary      Remove a like
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        input body LikeInput true "Like Info"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /likes [delete]
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	var input LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.likes.RemoveLike(c.Request.Context(), input.UserID, input.RecipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like removed successfully"})
}

// GetLikeCount godoc
// @Summary      Count the likes on a recipe
// @Tags         likes
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Success      200  {object}  map[string]int64 "{"count": 3}"
// @Failure      404  {object}  ErrorResponse
// @Router       /likes/{recipeId} [get]
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	count, err := h.likes.CountLikes(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetLikeUsers godoc
// @Summary      List the likes on a recipe with their users
// @Tags         likes
// @Produce      json
// @Param        recipeId path int true "Recipe ID"
// @Success      200  {array}   models.Like
// @Failure      404  {object}  ErrorResponse
// @Router       /likes/{recipeId}/users [get]
func (h *LikeHandler) GetLikeUsers(c *gin.Context) {
	recipeID, ok := parseUintParam(c, "recipeId")
	if !ok {
		return
	}

	likes, err := h.likes.GetLikesByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}
