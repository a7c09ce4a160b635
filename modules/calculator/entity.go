package calculator

import "time"

// Calculation is one persisted successful evaluation. Rows are append
// only: they are never updated or deleted by this service, so there are
// no UpdatedAt/DeletedAt columns.
type Calculation struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Expression string    `gorm:"size:255;not null" json:"expression"`
	Result     string    `gorm:"size:64;not null" json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for the Calculation model.
func (Calculation) TableName() string {
	return "calculations"
}
