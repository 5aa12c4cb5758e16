package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"topreceit/backend/internal/database"
	"topreceit/backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// recordingNotifier captures pushes instead of delivering them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentPush
}

type sentPush struct {
	Token string
	Title string
	Body  string
}

func (n *recordingNotifier) Send(_ context.Context, token, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentPush{Token: token, Title: title, Body: body})
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// failingNotifier always errors, for the fire-and-forget tests.
type failingNotifier struct{}

func (failingNotifier) Send(context.Context, string, string, string) error {
	return fmt.Errorf("push gateway unreachable")
}

func seedUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       id,
		Email:    id + "@example.com",
		Username: id,
		Role:     2,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, ownerID, title string, public bool) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		UserID:   ownerID,
		Title:    title,
		IsPublic: public,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seeding recipe %s: %v", title, err)
	}
	return recipe
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("seeding ingredient %s: %v", name, err)
	}
	return ingredient
}

func seedRecipeIngredient(t *testing.T, db *gorm.DB, recipeID, ingredientID uint, qty float64, unit string) *models.RecipeIngredient {
	t.Helper()
	line := &models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     qty,
		Unit:         unit,
	}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("seeding recipe ingredient: %v", err)
	}
	return line
}
