package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow is a directed edge: follower follows followed. The composite
// unique index keeps a pair from being inserted twice under concurrent
// requests.
type Follow struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	FollowerID string `gorm:"size:128;not null;uniqueIndex:idx_follower_followed" json:"followerId"`
	FollowedID string `gorm:"size:128;not null;uniqueIndex:idx_follower_followed" json:"followedId"`

	Follower *User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followed *User `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
