package models

import "time"

type ExpenseType string

const (
	ExpenseTypeDaily ExpenseType = "daily" // gasto variable del día
	ExpenseTypeFixed ExpenseType = "fixed" // gasto fijo del mes
)

type Expense struct {
	ID          uint        `gorm:"primaryKey"`
	Amount      float64     `gorm:"not null"`
	ExpenseType ExpenseType `gorm:"size:20;not null;index"`
	Description string      `gorm:"size:255"`
	CreatedBy   string      `gorm:"size:100"`
	CreatedAt   time.Time   `gorm:"index"`
	UpdatedAt   time.Time
}
