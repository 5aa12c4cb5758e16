package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateUserAndRetrieve(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{
		ID:       "u1",
		Email:    "cook@example.com",
		Username: "cook",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Role != 2 {
		t.Errorf("default role = %d, want 2", created.Role)
	}

	got, err := svc.GetUserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Email != "cook@example.com" || got.Username != "cook" {
		t.Errorf("retrieved user = %q/%q, want cook@example.com/cook", got.Email, got.Username)
	}
}

func TestCreateUserDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserInput{ID: "u1", Email: "a@example.com", Username: "alice"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := svc.CreateUser(ctx, CreateUserInput{ID: "u2", Email: "a@example.com", Username: "other"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email error = %v, want ErrConflict", err)
	}

	_, err = svc.CreateUser(ctx, CreateUserInput{ID: "u3", Email: "b@example.com", Username: "alice"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate username error = %v, want ErrConflict", err)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Email: "x@example.com", Username: "x"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("missing id error = %v, want ErrValidation", err)
	}
}

func TestGetUserProfileOnlyPublicRecipes(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	seedRecipe(t, db, "u1", "Public dish", true)
	seedRecipe(t, db, "u1", "Secret dish", false)

	profile, err := svc.GetUserProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserProfile: %v", err)
	}
	if len(profile.PublishedRecipes) != 1 {
		t.Fatalf("published recipes = %d, want 1", len(profile.PublishedRecipes))
	}
	if profile.PublishedRecipes[0].Title != "Public dish" {
		t.Errorf("published recipe = %q, want Public dish", profile.PublishedRecipes[0].Title)
	}
}

func TestUpdateNotificationToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")

	user, err := svc.UpdateNotificationToken(ctx, "u1", "device-token-1")
	if err != nil {
		t.Fatalf("UpdateNotificationToken: %v", err)
	}
	if user.NotificationToken != "device-token-1" {
		t.Errorf("token = %q, want device-token-1", user.NotificationToken)
	}

	if _, err := svc.UpdateNotificationToken(ctx, "missing", "tok"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestRemoveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")

	if err := svc.RemoveUser(ctx, "u1"); err != nil {
		t.Fatalf("RemoveUser: %v", err)
	}
	if _, err := svc.GetUserByID(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted user lookup error = %v, want ErrNotFound", err)
	}
	if err := svc.RemoveUser(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
