package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRecipeIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeIngredientService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", false)
	ing := seedIngredient(t, db, "huevo")

	line, err := svc.CreateRecipeIngredient(ctx, CreateRecipeIngredientInput{
		RecipeID:     recipe.ID,
		IngredientID: ing.ID,
		Quantity:     4,
		Unit:         "ud",
	})
	if err != nil {
		t.Fatalf("CreateRecipeIngredient: %v", err)
	}
	if line.Ingredient == nil || line.Ingredient.Name != "huevo" {
		t.Errorf("line ingredient = %+v, want huevo loaded", line.Ingredient)
	}

	if _, err := svc.CreateRecipeIngredient(ctx, CreateRecipeIngredientInput{RecipeID: 999, IngredientID: ing.ID}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown recipe error = %v, want ErrNotFound", err)
	}
	if _, err := svc.CreateRecipeIngredient(ctx, CreateRecipeIngredientInput{RecipeID: recipe.ID, IngredientID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ingredient error = %v, want ErrNotFound", err)
	}
	if _, err := svc.CreateRecipeIngredient(ctx, CreateRecipeIngredientInput{}); !errors.Is(err, ErrValidation) {
		t.Errorf("empty input error = %v, want ErrValidation", err)
	}
}

func TestUpdateRecipeIngredientRetargets(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeIngredientService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", false)
	huevo := seedIngredient(t, db, "huevo")
	patata := seedIngredient(t, db, "patata")
	line := seedRecipeIngredient(t, db, recipe.ID, huevo.ID, 4, "ud")

	qty := 2.5
	updated, err := svc.UpdateRecipeIngredient(ctx, line.ID, UpdateRecipeIngredientInput{
		IngredientID: &patata.ID,
		Quantity:     &qty,
	})
	if err != nil {
		t.Fatalf("UpdateRecipeIngredient: %v", err)
	}
	if updated.IngredientID != patata.ID || updated.Quantity != 2.5 || updated.Unit != "ud" {
		t.Errorf("updated line = %+v, want retargeted to patata with unit kept", updated)
	}

	bad := uint(999)
	if _, err := svc.UpdateRecipeIngredient(ctx, line.ID, UpdateRecipeIngredientInput{IngredientID: &bad}); !errors.Is(err, ErrNotFound) {
		t.Errorf("retarget to unknown ingredient error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRecipeIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeIngredientService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", false)
	ing := seedIngredient(t, db, "huevo")
	line := seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	if err := svc.DeleteRecipeIngredient(ctx, line.ID); err != nil {
		t.Fatalf("DeleteRecipeIngredient: %v", err)
	}
	if err := svc.DeleteRecipeIngredient(ctx, line.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}

	lines, err := svc.GetAllIngredientsForRecipe(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetAllIngredientsForRecipe: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines left = %d, want 0", len(lines))
	}
}
