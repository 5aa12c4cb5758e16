package service

import (
	"context"
	"errors"
	"testing"

	"topreceit/backend/internal/models"
)

func TestCreateLikeOncePerUser(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewLikeService(db, notifier)
	ctx := context.Background()

	seedUser(t, db, "owner")
	seedUser(t, db, "fan")
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("second like error = %v, want ErrConflict", err)
	}

	count, err := svc.CountLikes(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("CountLikes: %v", err)
	}
	if count != 1 {
		t.Errorf("like count = %d, want 1", count)
	}
}

func TestCreateLikeNotifiesOwner(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewLikeService(db, notifier)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	owner.NotificationToken = "owner-device"
	if err := db.Save(owner).Error; err != nil {
		t.Fatalf("saving owner token: %v", err)
	}
	seedUser(t, db, "fan")
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if notifier.count() != 1 {
		t.Fatalf("pushes sent = %d, want 1", notifier.count())
	}
	if notifier.sent[0].Token != "owner-device" {
		t.Errorf("push token = %q, want owner-device", notifier.sent[0].Token)
	}
}

func TestCreateLikeSelfDoesNotNotify(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewLikeService(db, notifier)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	owner.NotificationToken = "owner-device"
	if err := db.Save(owner).Error; err != nil {
		t.Fatalf("saving owner token: %v", err)
	}
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "owner", recipe.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if notifier.count() != 0 {
		t.Errorf("pushes sent = %d, want 0 for a self-like", notifier.count())
	}
}

func TestCreateLikeSurvivesNotifierFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db, failingNotifier{})
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	owner.NotificationToken = "owner-device"
	if err := db.Save(owner).Error; err != nil {
		t.Fatalf("saving owner token: %v", err)
	}
	seedUser(t, db, "fan")
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("CreateLike should swallow push failures, got %v", err)
	}

	var count int64
	db.Model(&models.Like{}).Count(&count)
	if count != 1 {
		t.Errorf("likes stored = %d, want 1", count)
	}
}

func TestRemoveLike(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db, &recordingNotifier{})
	ctx := context.Background()

	seedUser(t, db, "owner")
	seedUser(t, db, "fan")
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if err := svc.RemoveLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("RemoveLike: %v", err)
	}
	if err := svc.RemoveLike(ctx, "fan", recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
}

func TestGetLikesByRecipeLoadsUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db, &recordingNotifier{})
	ctx := context.Background()

	seedUser(t, db, "owner")
	seedUser(t, db, "fan")
	recipe := seedRecipe(t, db, "owner", "Paella", true)

	if _, err := svc.CreateLike(ctx, "fan", recipe.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	likes, err := svc.GetLikesByRecipe(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetLikesByRecipe: %v", err)
	}
	if len(likes) != 1 || likes[0].User == nil || likes[0].User.Username != "fan" {
		t.Errorf("likes = %+v, want one like with the fan user loaded", likes)
	}
}
