package calculator

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&Calculation{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	calc := &Calculation{
		Expression: "2 + 3",
		Result:     "5",
	}

	if err := repo.Create(calc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if calc.ID == 0 {
		t.Error("expected storage to assign a non-zero ID")
	}
	if calc.CreatedAt.IsZero() {
		t.Error("expected storage to assign CreatedAt")
	}

	// Verify the row round-trips
	var found Calculation
	if err := db.First(&found, "id = ?", calc.ID).Error; err != nil {
		t.Fatalf("failed to find created calculation: %v", err)
	}
	if found.Expression != calc.Expression {
		t.Errorf("expected expression %q, got %q", calc.Expression, found.Expression)
	}
	if found.Result != calc.Result {
		t.Errorf("expected result %q, got %q", calc.Result, found.Result)
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	calc := &Calculation{Expression: "7 // 2", Result: "3"}
	if err := db.Create(calc).Error; err != nil {
		t.Fatalf("failed to create test calculation: %v", err)
	}

	t.Run("existing calculation", func(t *testing.T) {
		found, err := repo.FindByID(calc.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Expression != calc.Expression {
			t.Errorf("expected expression %q, got %q", calc.Expression, found.Expression)
		}
	})

	t.Run("non-existent calculation", func(t *testing.T) {
		_, err := repo.FindByID(99999)
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_FindRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	t.Run("empty database", func(t *testing.T) {
		calcs, err := repo.FindRecent(50)
		if err != nil {
			t.Fatalf("FindRecent() error = %v", err)
		}
		if len(calcs) != 0 {
			t.Errorf("expected 0 calculations, got %d", len(calcs))
		}
	})

	// Create test calculations in insertion order
	expressions := []string{"1 + 1", "2 + 2", "3 + 3"}
	for i, e := range expressions {
		calc := &Calculation{Expression: e, Result: formatResult(float64(2 * (i + 1)))}
		if err := db.Create(calc).Error; err != nil {
			t.Fatalf("failed to create test calculation: %v", err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		calcs, err := repo.FindRecent(50)
		if err != nil {
			t.Fatalf("FindRecent() error = %v", err)
		}
		if len(calcs) != 3 {
			t.Fatalf("expected 3 calculations, got %d", len(calcs))
		}
		if calcs[0].Expression != "3 + 3" {
			t.Errorf("expected newest first, got %q", calcs[0].Expression)
		}
		if calcs[2].Expression != "1 + 1" {
			t.Errorf("expected oldest last, got %q", calcs[2].Expression)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		calcs, err := repo.FindRecent(2)
		if err != nil {
			t.Fatalf("FindRecent() error = %v", err)
		}
		if len(calcs) != 2 {
			t.Errorf("expected 2 calculations, got %d", len(calcs))
		}
	})
}
