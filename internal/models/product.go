package models

import "time"

type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;unique"`
	Price       float64 `gorm:"not null"`              // precio de venta (Bs.)
	Cost        float64 `gorm:"not null;default:0"`    // costo de mercancía (Bs.)
	Category    string  `gorm:"size:100;index"`        // nombre de categoría (denormalizado)
	Description string  `gorm:"size:255"`
	ImageURL    string  `gorm:"size:500"` // URL externa, no hay upload de archivos
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
