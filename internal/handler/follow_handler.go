package handler

import (
	"net/http"

	"topreceit/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowHandler exposes the follow graph endpoints.
type FollowHandler struct {
	follows *service.FollowService
}

func NewFollowHandler(follows *service.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// FollowUser godoc
// @Summary      Follow a user
// @Tags         follows
// @Produce      json
// @Param        followerId path string true "Follower ID"
// @Param        followedId path string true "Followed ID"
// @Success      201  {object}  models.Follow
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /follows/{followerId}/follow/{followedId} [post]
func (h *FollowHandler) FollowUser(c *gin.Context) {
	follow, err := h.follows.FollowUser(c.Request.Context(), c.Param("followerId"), c.Param("followedId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, follow)
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Param        followerId path string true "Follower ID"
// @Param        followedId path string true "Followed ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /follows/{followerId}/unfollow/{followedId} [delete]
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	err := h.follows.UnfollowUser(c.Request.Context(), c.Param("followerId"), c.Param("followedId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

// GetFollowing godoc
// @Summary      List the users someone follows
// @Tags         follows
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.UserSummary
// @Failure      404  {object}  ErrorResponse
// @Router       /follows/{userId}/following [get]
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	following, err := h.follows.GetFollowing(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}

// GetFollowers godoc
// @Summary      List the followers of a user
// @Tags         follows
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.UserSummary
// @Failure      404  {object}  ErrorResponse
// @Router       /follows/{userId}/followers [get]
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	followers, err := h.follows.GetFollowers(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}
