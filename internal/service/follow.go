package service

import (
	"context"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FollowService manages the directed follow graph between users.
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// FollowUser creates a follow edge from follower to followed.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followedID string) (*models.Follow, error) {
	if followerID == "" || followedID == "" {
		return nil, validationf("follower_id and followed_id are required")
	}
	if followerID == followedID {
		return nil, validationf("users cannot follow themselves")
	}

	var follower, followed models.User
	if err := s.db.WithContext(ctx).First(&follower, "id_user = ?", followerID).Error; err != nil {
		return nil, notFoundf("user %s", followerID)
	}
	if err := s.db.WithContext(ctx).First(&followed, "id_user = ?", followedID).Error; err != nil {
		return nil, notFoundf("user %s", followedID)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		logger.Log.Error("failed to check follow", zap.Error(err))
		return nil, internalf("could not follow user")
	}
	if count > 0 {
		return nil, conflictf("user %s already follows %s", followerID, followedID)
	}

	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := s.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflictf("user %s already follows %s", followerID, followedID)
		}
		logger.Log.Error("failed to create follow", zap.Error(err))
		return nil, internalf("could not follow user, please retry")
	}
	return &follow, nil
}

// UnfollowUser removes the follow edge from follower to followed.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followedID string) error {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if result.Error != nil {
		logger.Log.Error("failed to delete follow", zap.Error(result.Error))
		return internalf("could not unfollow user")
	}
	if result.RowsAffected == 0 {
		return notFoundf("user %s does not follow %s", followerID, followedID)
	}
	return nil
}

// GetFollowing lists the users the given user follows, as summaries.
func (s *FollowService) GetFollowing(ctx context.Context, userID string) ([]models.UserSummary, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	var follows []models.Follow
	err := s.db.WithContext(ctx).
		Preload("Followed").
		Where("follower_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		logger.Log.Error("failed to list following", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list following")
	}

	summaries := make([]models.UserSummary, 0, len(follows))
	for _, f := range follows {
		if f.Followed == nil {
			continue
		}
		summaries = append(summaries, f.Followed.Summary())
	}
	return summaries, nil
}

// GetFollowers lists the users following the given user, as summaries.
func (s *FollowService) GetFollowers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, notFoundf("user %s", userID)
	}

	var follows []models.Follow
	err := s.db.WithContext(ctx).
		Preload("Follower").
		Where("followed_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		logger.Log.Error("failed to list followers", zap.String("user_id", userID), zap.Error(err))
		return nil, internalf("could not list followers")
	}

	summaries := make([]models.UserSummary, 0, len(follows))
	for _, f := range follows {
		if f.Follower == nil {
			continue
		}
		summaries = append(summaries, f.Follower.Summary())
	}
	return summaries, nil
}
