package calculator

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a calculation is not found.
var ErrNotFound = errors.New("calculation not found")

// Repository provides access to calculation storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new calculation repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a new calculation to the history. The storage assigns
// the ID and CreatedAt.
func (r *Repository) Create(calc *Calculation) error {
	if err := r.db.Create(calc).Error; err != nil {
		return fmt.Errorf("failed to create calculation: %w", err)
	}
	return nil
}

// FindByID retrieves a calculation by its ID.
func (r *Repository) FindByID(id uint) (*Calculation, error) {
	var calc Calculation
	if err := r.db.First(&calc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find calculation: %w", err)
	}
	return &calc, nil
}

// FindRecent retrieves the most recent calculations, newest first.
func (r *Repository) FindRecent(limit int) ([]*Calculation, error) {
	var calcs []*Calculation
	if err := r.db.Order("id desc").Limit(limit).Find(&calcs).Error; err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calcs, nil
}
