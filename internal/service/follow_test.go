package service

import (
	"context"
	"errors"
	"testing"
)

func TestFollowAndUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	if _, err := svc.FollowUser(ctx, "alice", "bob"); err != nil {
		t.Fatalf("FollowUser: %v", err)
	}

	following, err := svc.GetFollowing(ctx, "alice")
	if err != nil {
		t.Fatalf("GetFollowing: %v", err)
	}
	if len(following) != 1 || following[0].ID != "bob" {
		t.Fatalf("following = %+v, want just bob", following)
	}

	followers, err := svc.GetFollowers(ctx, "bob")
	if err != nil {
		t.Fatalf("GetFollowers: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != "alice" {
		t.Fatalf("followers = %+v, want just alice", followers)
	}

	if err := svc.UnfollowUser(ctx, "alice", "bob"); err != nil {
		t.Fatalf("UnfollowUser: %v", err)
	}

	following, err = svc.GetFollowing(ctx, "alice")
	if err != nil {
		t.Fatalf("GetFollowing after unfollow: %v", err)
	}
	if len(following) != 0 {
		t.Errorf("following after unfollow = %+v, want empty", following)
	}
}

func TestFollowDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	if _, err := svc.FollowUser(ctx, "alice", "bob"); err != nil {
		t.Fatalf("FollowUser: %v", err)
	}
	if _, err := svc.FollowUser(ctx, "alice", "bob"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate follow error = %v, want ErrConflict", err)
	}
}

func TestFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)

	seedUser(t, db, "alice")

	if _, err := svc.FollowUser(context.Background(), "alice", "alice"); !errors.Is(err, ErrValidation) {
		t.Errorf("self-follow error = %v, want ErrValidation", err)
	}
}

func TestFollowUnknownUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")

	if _, err := svc.FollowUser(ctx, "alice", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown followed error = %v, want ErrNotFound", err)
	}
	if _, err := svc.FollowUser(ctx, "ghost", "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown follower error = %v, want ErrNotFound", err)
	}
	if err := svc.UnfollowUser(ctx, "alice", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unfollow missing edge error = %v, want ErrNotFound", err)
	}
}
