package handler

import (
	"net/http"
	"strconv"

	"topreceit/backend/internal/service"
	"topreceit/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user account endpoints.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// TokenInput carries the device token for push delivery.
type TokenInput struct {
	Token string `json:"token_notificacion" binding:"required"`
}

// CreateUser godoc
// @Summary      Register a new user
// @Description  Creates a user from the identity provider's id, email and username.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body service.CreateUserInput true "User Info"
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Issue a token for an existing user
// @Description  Returns a signed JWT for the given user id.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/login/{id} [post]
func (h *UserHandler) Login(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAllUsers godoc
// @Summary      List users
// @Description  With ?page= and ?limit= the listing is paginated.
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size" default(20)
// @Success      200  {array}   models.UserSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	if c.Query("page") != "" || c.Query("limit") != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		users, total, err := h.users.GetUsersPage(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, NewPaginatedResponse(users, total, page, limit))
		return
	}

	users, err := h.users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary      Get a user
// @Description  Returns the user with favorites and follow edges loaded.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserProfile godoc
// @Summary      Get a user's public profile
// @Description  Returns profile fields plus the user's published recipes.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  models.UserProfile
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/profile [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	profile, err := h.users.GetUserProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Merges the provided fields onto the stored user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body service.UpdateUserInput true "Fields to update"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateNotificationToken godoc
// @Summary      Store a device notification token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body TokenInput true "Device token"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/token [put]
func (h *UserHandler) UpdateNotificationToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateNotificationToken(c.Request.Context(), c.Param("id"), input.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RemoveUser godoc
// @Summary      Delete a user
// @Description  Deletes the user and everything they own.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) RemoveUser(c *gin.Context) {
	if err := h.users.RemoveUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
