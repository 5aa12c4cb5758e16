package service

import (
	"context"
	"errors"
	"testing"

	"topreceit/backend/internal/models"
)

func TestShoppingListAbsentUntilFirstAdd(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")

	// Reads and mutations on a list that was never created are NotFound.
	if _, err := svc.GetShoppingList(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetShoppingList before any add: err = %v, want ErrNotFound", err)
	}
	if err := svc.ClearShoppingList(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ClearShoppingList before any add: err = %v, want ErrNotFound", err)
	}
	if err := svc.RemoveShoppingListItem(ctx, "u1", "some-item"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveShoppingListItem before any add: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.ToggleItemPurchased(ctx, "u1", "some-item"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleItemPurchased before any add: err = %v, want ErrNotFound", err)
	}

	// None of the above may create the list as a side effect.
	var count int64
	db.Model(&models.ShoppingList{}).Count(&count)
	if count != 0 {
		t.Errorf("shopping list rows after reads = %d, want 0", count)
	}
}

func TestAddRecipeCreatesListLazily(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	ing := seedIngredient(t, db, "huevo")
	seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	list, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}
	if list.ID == "" {
		t.Error("lazily created list has no id")
	}

	got, err := svc.GetShoppingList(ctx, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList after add: %v", err)
	}
	if got.ID != list.ID {
		t.Errorf("GetShoppingList returned a different list: %s vs %s", got.ID, list.ID)
	}
	if len(got.Items) != 1 {
		t.Errorf("items = %d, want 1", len(got.Items))
	}
}

func TestGetShoppingListUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)

	if _, err := svc.GetShoppingList(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestAddRecipeTwiceDoublesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	for _, name := range []string{"huevo", "patata", "cebolla"} {
		ing := seedIngredient(t, db, name)
		seedRecipeIngredient(t, db, recipe.ID, ing.ID, 1, "ud")
	}

	if _, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID); err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}
	list, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList again: %v", err)
	}

	// No merging: three ingredients added twice is six items.
	if len(list.Items) != 6 {
		t.Errorf("items after adding twice = %d, want 6", len(list.Items))
	}
}

func TestAddRecipeSnapshotsIngredientNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	ing := seedIngredient(t, db, "huevo")
	seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	list, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(list.Items))
	}
	item := list.Items[0]
	if item.IngredientName != "huevo" || item.Quantity != 4 || item.Unit != "ud" {
		t.Errorf("item = %+v, want snapshot of the huevo line", item)
	}
	if item.IsPurchased {
		t.Error("new item marked purchased")
	}
}

func TestRemoveShoppingListItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	ing := seedIngredient(t, db, "huevo")
	seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	list, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}

	// A bad id removes nothing.
	if err := svc.RemoveShoppingListItem(ctx, "u1", "no-such-item"); !errors.Is(err, ErrNotFound) {
		t.Errorf("bad item id error = %v, want ErrNotFound", err)
	}
	unchanged, err := svc.GetShoppingList(ctx, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList: %v", err)
	}
	if len(unchanged.Items) != 1 {
		t.Fatalf("items after failed remove = %d, want 1", len(unchanged.Items))
	}

	if err := svc.RemoveShoppingListItem(ctx, "u1", list.Items[0].ID); err != nil {
		t.Fatalf("RemoveShoppingListItem: %v", err)
	}
	empty, err := svc.GetShoppingList(ctx, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList: %v", err)
	}
	if len(empty.Items) != 0 {
		t.Errorf("items after remove = %d, want 0", len(empty.Items))
	}
}

func TestClearShoppingListKeepsList(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	ing := seedIngredient(t, db, "huevo")
	seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	before, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}

	if err := svc.ClearShoppingList(ctx, "u1"); err != nil {
		t.Fatalf("ClearShoppingList: %v", err)
	}

	after, err := svc.GetShoppingList(ctx, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList: %v", err)
	}
	if len(after.Items) != 0 {
		t.Errorf("items after clear = %d, want 0", len(after.Items))
	}
	if after.ID != before.ID {
		t.Errorf("clear replaced the list: %s vs %s", after.ID, before.ID)
	}
}

func TestToggleItemPurchasedTwiceIsIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	recipe := seedRecipe(t, db, "u1", "Tortilla", true)
	ing := seedIngredient(t, db, "huevo")
	seedRecipeIngredient(t, db, recipe.ID, ing.ID, 4, "ud")

	list, err := svc.AddRecipeToShoppingList(ctx, "u1", recipe.ID)
	if err != nil {
		t.Fatalf("AddRecipeToShoppingList: %v", err)
	}
	itemID := list.Items[0].ID

	item, err := svc.ToggleItemPurchased(ctx, "u1", itemID)
	if err != nil {
		t.Fatalf("ToggleItemPurchased: %v", err)
	}
	if !item.IsPurchased {
		t.Error("first toggle: purchased = false, want true")
	}

	item, err = svc.ToggleItemPurchased(ctx, "u1", itemID)
	if err != nil {
		t.Fatalf("ToggleItemPurchased: %v", err)
	}
	if item.IsPurchased {
		t.Error("second toggle: purchased = true, want false")
	}

	if _, err := svc.ToggleItemPurchased(ctx, "u1", "no-such-item"); !errors.Is(err, ErrNotFound) {
		t.Errorf("bad item id error = %v, want ErrNotFound", err)
	}
}
