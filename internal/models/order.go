package models

import "time"

type OrderType string

const (
	OrderTypeMesa     OrderType = "mesa"     // consumo en local
	OrderTypeLlevar   OrderType = "llevar"   // para llevar
	OrderTypeWhatsApp OrderType = "whatsapp" // delivery por WhatsApp
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // pedido de kiosco sin cobrar
	OrderStatusCompleted OrderStatus = "completed"
)

type KitchenStatus string

const (
	KitchenStatusPending KitchenStatus = "pending"
	KitchenStatusReady   KitchenStatus = "ready"
)

type Order struct {
	ID               uint          `gorm:"primaryKey"`
	ClaimCode        string        `gorm:"size:36;index"` // código para recoger pedido de kiosco
	TotalAmount      float64       `gorm:"not null"`
	OrderType        OrderType     `gorm:"size:20;not null"`
	Status           OrderStatus   `gorm:"size:20;not null;index"`
	KitchenStatus    KitchenStatus `gorm:"size:20;not null;default:'pending';index"`
	PaymentMethod    string        `gorm:"size:20"` // cash | qr | pendiente (vacío hasta aprobar kiosco)
	CustomerName     string        `gorm:"size:100"`
	CustomerPhone    string        `gorm:"size:20"`
	DeliveryLocation string        `gorm:"size:255"`
	AdvanceAmount    float64       `gorm:"not null;default:0"` // adelanto en pedidos delivery
	CashierName      string        `gorm:"size:100"`
	Items            []OrderItem   `gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time     `gorm:"index"`
	UpdatedAt        time.Time
}

// OrderItem congela precio y costo al momento de la venta. El precio histórico
// nunca se recalcula desde el producto vivo.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey"`
	OrderID     uint    `gorm:"index;not null"`
	ProductID   uint    `gorm:"index;not null"`
	Quantity    int     `gorm:"not null"`
	PriceAtSale float64 `gorm:"not null"`
	CostAtSale  float64 `gorm:"not null;default:0"` // 0 en filas anteriores a la columna
	CreatedAt   time.Time
}
