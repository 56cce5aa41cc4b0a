package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests need a live database. Point TEST_DB_DSN at a scratch postgres
// instance to run them.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.AutoMigrate(&model.Category{}, &model.Design{}, &model.Blog{}, &model.Information{}); err != nil {
		t.Fatal(err)
	}

	return NewRepository(db, util.NewLogger("development"), nil, nil)
}

func createTestCategory(t *testing.T, repo *Repository) *model.Category {
	t.Helper()
	ctx := context.Background()

	suffix, err := util.GenerateNChar(8)
	if err != nil {
		t.Fatal(err)
	}
	name := "Category " + suffix

	category, err := repo.Category.Create(ctx, nil, &model.Category{
		Name:     name,
		Slug:     util.Slugify(name),
		IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = repo.Category.Delete(ctx, nil, category.ID)
	})

	return category
}

// An update whose map carries no fields must return the record, not a
// not-found error; only an unresolvable id is a not-found.
func TestCategoryUpdateWithNoFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	category := createTestCategory(t, repo)

	got, err := repo.Category.Update(ctx, nil, category.ID, map[string]any{})
	if err != nil {
		t.Fatalf("Expected empty update to return the record, got: %v", err)
	}
	if got.ID != category.ID {
		t.Errorf("Expected id %s, got %s", category.ID, got.ID)
	}

	if _, err := repo.Category.Update(ctx, nil, uuid.NewString(), map[string]any{}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected not found for a missing id, got: %v", err)
	}
}

// Map updates bypass the model's json serializer, so jsonb columns take an
// already-encoded payload and must round-trip through a read.
func TestDesignUpdateSubImagesRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	category := createTestCategory(t, repo)

	design, err := repo.Design.Create(ctx, nil, &model.Design{
		ProjectName: "Round trip",
		MainImage:   "http://localhost:9000/interiorhub/designs/main.png",
		LandArea:    "100m2",
		CategoryID:  category.ID,
		SubImages:   []string{"http://localhost:9000/interiorhub/designs/a.png"},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = repo.Design.Delete(ctx, nil, design.ID)
	})

	newSubImages := []string{
		"http://localhost:9000/interiorhub/designs/b.png",
		"http://localhost:9000/interiorhub/designs/c.png",
	}
	encoded, err := util.ToJSONColumn(newSubImages)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := repo.Design.Update(ctx, nil, design.ID, map[string]any{"sub_images": encoded})
	if err != nil {
		t.Fatalf("Expected sub images update to succeed, got: %v", err)
	}

	if len(updated.SubImages) != len(newSubImages) {
		t.Fatalf("Expected %d sub images, got %d", len(newSubImages), len(updated.SubImages))
	}
	for i := range newSubImages {
		if updated.SubImages[i] != newSubImages[i] {
			t.Errorf("SubImages[%d] = %s, want %s", i, updated.SubImages[i], newSubImages[i])
		}
	}
}
