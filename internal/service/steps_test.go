package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndListStepsInOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepsService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", false)

	// Created out of order on purpose.
	if _, err := svc.CreateStep(ctx, recipe.ID, CreateStepInput{Description: "Servir", Order: 3}); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}
	if _, err := svc.CreateStep(ctx, recipe.ID, CreateStepInput{Description: "Batir huevos", Order: 1}); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}
	if _, err := svc.CreateStep(ctx, recipe.ID, CreateStepInput{Description: "Cuajar", Order: 2}); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	steps, err := svc.GetStepsByRecipe(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetStepsByRecipe: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(steps))
	}
	for i, step := range steps {
		if step.Order != i+1 {
			t.Errorf("steps[%d].Order = %d, want %d", i, step.Order, i+1)
		}
	}
}

func TestCreateStepValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepsService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", false)

	if _, err := svc.CreateStep(ctx, recipe.ID, CreateStepInput{Description: "  ", Order: 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank description error = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateStep(ctx, 999, CreateStepInput{Description: "x", Order: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown recipe error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStepScopedToRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepsService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	mine := seedRecipe(t, db, "u1", "Tortilla", false)
	other := seedRecipe(t, db, "u1", "Gazpacho", false)

	step, err := svc.CreateStep(ctx, mine.ID, CreateStepInput{Description: "Batir", Order: 1})
	if err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	desc := "Batir bien"
	updated, err := svc.UpdateStep(ctx, mine.ID, step.ID, UpdateStepInput{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}
	if updated.Description != "Batir bien" || updated.Order != 1 {
		t.Errorf("updated step = %+v, want merged description only", updated)
	}

	// The same step id under the wrong recipe is invisible.
	if _, err := svc.UpdateStep(ctx, other.ID, step.ID, UpdateStepInput{Description: &desc}); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-recipe update error = %v, want ErrNotFound", err)
	}
}

func TestDeleteStepScopedAndUnscoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepsService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	mine := seedRecipe(t, db, "u1", "Tortilla", false)
	other := seedRecipe(t, db, "u1", "Gazpacho", false)

	first, err := svc.CreateStep(ctx, mine.ID, CreateStepInput{Description: "Batir", Order: 1})
	if err != nil {
		t.Fatalf("CreateStep: %v", err)
	}
	second, err := svc.CreateStep(ctx, mine.ID, CreateStepInput{Description: "Cuajar", Order: 2})
	if err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	if err := svc.DeleteStep(ctx, first.ID, other.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-recipe delete error = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteStep(ctx, first.ID, mine.ID); err != nil {
		t.Fatalf("DeleteStep: %v", err)
	}
	if err := svc.DeleteStepByID(ctx, second.ID); err != nil {
		t.Fatalf("DeleteStepByID: %v", err)
	}

	steps, err := svc.GetStepsByRecipe(ctx, mine.ID)
	if err != nil {
		t.Fatalf("GetStepsByRecipe: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("steps left = %d, want 0", len(steps))
	}
}
