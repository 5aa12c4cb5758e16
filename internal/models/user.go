package models

import "time"

// User represents an account in the system. The ID is supplied by the
// external identity provider at signup, not generated locally.
type User struct {
	ID                string   `gorm:"primaryKey;size:128;column:id_user" json:"id_user"`
	Email             string   `gorm:"size:255;unique;not null" json:"email"`
	Username          string   `gorm:"size:255;not null" json:"username"`
	Role              int      `gorm:"not null;default:2" json:"role"`
	Preferences       []string `gorm:"serializer:json" json:"preferences"`
	Avatar            string   `gorm:"size:512" json:"avatar,omitempty"`
	NotificationToken string   `gorm:"size:512" json:"notification_token,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Recipes   []Recipe   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Likes     []Like     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	Following []Follow   `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"following,omitempty"`
	Followers []Follow   `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"followers,omitempty"`
}

// UserSummary is the projection returned by user listings and the follow
// endpoints: just enough to render a profile card.
type UserSummary struct {
	ID          string   `json:"id_user"`
	Username    string   `json:"username"`
	Avatar      string   `json:"avatar,omitempty"`
	Preferences []string `json:"preferences"`
}

// Summary projects the user to its listing view.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		Avatar:      u.Avatar,
		Preferences: u.Preferences,
	}
}

// UserProfile is the public profile view: summary fields plus the user's
// published (public) recipes.
type UserProfile struct {
	ID               string   `json:"id_user"`
	Username         string   `json:"username"`
	Avatar           string   `json:"avatar,omitempty"`
	Preferences      []string `json:"preferences"`
	PublishedRecipes []Recipe `json:"publishedRecipes"`
}
