package models

import "time"

type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusClosed SessionStatus = "closed"
)

// CashRegisterSession es un turno de caja. ClosedAt está seteado si y solo si
// Status = closed; las cifras de arqueo se escriben una única vez al cierre.
type CashRegisterSession struct {
	ID          uint          `gorm:"primaryKey"`
	InitialCash float64       `gorm:"not null"` // fondo inicial
	OpenedAt    time.Time     `gorm:"not null;index"`
	ClosedAt    *time.Time    `gorm:"index"`
	Status      SessionStatus `gorm:"size:20;not null;index"`
	OpenedBy    string        `gorm:"size:100"`

	// Cifras de arqueo, escritas al cierre
	FinalCash         float64 `gorm:"not null;default:0"` // monto contado
	ExpectedCash      float64 `gorm:"not null;default:0"`
	Difference        float64 `gorm:"not null;default:0"`
	TotalSalesCash    float64 `gorm:"not null;default:0"`
	TotalSalesDigital float64 `gorm:"not null;default:0"`
	TotalWithdrawals  float64 `gorm:"not null;default:0"`
	TotalDeposits     float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CashMoveType string

const (
	CashMoveWithdrawal CashMoveType = "withdrawal" // retiro de efectivo
	CashMoveDeposit    CashMoveType = "deposit"    // ingreso manual
)

type CashMove struct {
	ID             uint         `gorm:"primaryKey"`
	CashRegisterID uint         `gorm:"index;not null"`
	Type           CashMoveType `gorm:"size:20;not null"`
	Amount         float64      `gorm:"not null"`
	Reason         string       `gorm:"size:255"`
	PerformedBy    string       `gorm:"size:100"`
	CreatedAt      time.Time    `gorm:"index"`
}
