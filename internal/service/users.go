package service

import (
	"context"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier delivers a push notification to a device token. Implementations
// own their transport; callers treat delivery as fire-and-forget.
type Notifier interface {
	Send(ctx context.Context, token, title, body string) error
}

// UserService manages user accounts.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput carries the fields accepted at signup. The ID comes from
// the external identity provider.
type CreateUserInput struct {
	ID          string   `json:"id_user"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	Role        int      `json:"role"`
	Preferences []string `json:"preferences"`
	Avatar      string   `json:"avatar"`
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Email       *string   `json:"email"`
	Username    *string   `json:"username"`
	Role        *int      `json:"role"`
	Preferences *[]string `json:"preferences"`
	Avatar      *string   `json:"avatar"`
}

// CreateUser registers a new user. Username and email must be unused.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.ID == "" || in.Email == "" || in.Username == "" {
		return nil, validationf("id, email and username are required")
	}

	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", in.Username, in.Email).
		First(&existing).Error
	if err == nil {
		return nil, conflictf("username or email already in use")
	}

	user := models.User{
		ID:          in.ID,
		Email:       in.Email,
		Username:    in.Username,
		Preferences: in.Preferences,
		Avatar:      in.Avatar,
	}
	if in.Role != 0 {
		user.Role = in.Role
	} else {
		user.Role = 2
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflictf("username or email already in use")
		}
		logger.Log.Error("failed to create user", zap.String("user_id", in.ID), zap.Error(err))
		return nil, internalf("could not create user, please retry")
	}
	return &user, nil
}

// UpdateUser merges the provided fields onto the stored record.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", id).Error; err != nil {
		return nil, notFoundf("user %s", id)
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Preferences != nil {
		user.Preferences = *in.Preferences
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflictf("username or email already in use")
		}
		logger.Log.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return nil, internalf("could not update user, please retry")
	}
	return &user, nil
}

// GetUserByID returns the user with favorites (and their recipes) and the
// follow edges in both directions.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Favorites").
		Preload("Favorites.Recipe").
		Preload("Following").
		Preload("Followers").
		First(&user, "id_user = ?", id).Error
	if err != nil {
		return nil, notFoundf("user %s", id)
	}
	return &user, nil
}

// GetUserProfile returns the public profile: summary fields plus the
// user's public recipes.
func (s *UserService) GetUserProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Recipes", "is_public = ?", true).
		First(&user, "id_user = ?", id).Error
	if err != nil {
		return nil, notFoundf("user %s", id)
	}

	published := user.Recipes
	if published == nil {
		published = []models.Recipe{}
	}
	return &models.UserProfile{
		ID:               user.ID,
		Username:         user.Username,
		Avatar:           user.Avatar,
		Preferences:      user.Preferences,
		PublishedRecipes: published,
	}, nil
}

// GetAllUsers lists every user projected to summary fields.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		logger.Log.Error("failed to list users", zap.Error(err))
		return nil, internalf("could not list users")
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.UserSummary{
			ID:          u.ID,
			Username:    u.Username,
			Avatar:      u.Avatar,
			Preferences: u.Preferences,
		})
	}
	return summaries, nil
}

// RemoveUser deletes the user and, through the cascade, everything they own.
func (s *UserService) RemoveUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, "id_user = ?", id)
	if result.Error != nil {
		logger.Log.Error("failed to delete user", zap.String("user_id", id), zap.Error(result.Error))
		return internalf("could not delete user")
	}
	if result.RowsAffected == 0 {
		return notFoundf("user %s", id)
	}
	return nil
}

// UpdateNotificationToken stores the device token pushes are sent to.
func (s *UserService) UpdateNotificationToken(ctx context.Context, id, token string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", id).Error; err != nil {
		return nil, notFoundf("user %s", id)
	}

	user.NotificationToken = token
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		logger.Log.Error("failed to store notification token", zap.String("user_id", id), zap.Error(err))
		return nil, internalf("could not update notification token")
	}
	return &user, nil
}

// GetUsersPage returns one page of user summaries plus the total count.
func (s *UserService) GetUsersPage(ctx context.Context, page, limit int) ([]models.UserSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		logger.Log.Error("failed to count users", zap.Error(err))
		return nil, 0, internalf("could not list users")
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Order("id_user").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		logger.Log.Error("failed to page users", zap.Error(err))
		return nil, 0, internalf("could not list users")
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, total, nil
}
