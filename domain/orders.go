package domain

import "time"

type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CustomerEmail    string    `gorm:"column:cliente_email;not null" json:"cliente_email"`
	DeliveryAddress  string    `gorm:"column:endereco_entrega" json:"endereco_entrega"`
	FreightValue     float64   `gorm:"column:valor_frete" json:"valor_frete"`
	TotalValue       float64   `gorm:"column:valor_total" json:"valor_total"`
	PaymentMethod    string    `gorm:"column:forma_pagamento" json:"forma_pagamento"`
	DeliveryEstimate string    `gorm:"column:prazo_entrega" json:"prazo_entrega"`
	OrderedAt        time.Time `gorm:"column:data_pedido" json:"data_pedido"`

	Items []OrderItem `gorm:"-" json:"itens,omitempty"`
}

func (Order) TableName() string {
	return "pedidos"
}

// OrderItem rows are only ever written inside the order-creation
// transaction, never on their own.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"column:pedido_id;not null" json:"pedido_id"`
	ProductID   int     `gorm:"column:produto_id" json:"produto_id"`
	ProductName string  `gorm:"column:nome_produto" json:"nome_produto"`
	Quantity    int     `gorm:"column:quantidade" json:"quantidade"`
	UnitPrice   float64 `gorm:"column:valor_unitario" json:"valor_unitario"`
}

func (OrderItem) TableName() string {
	return "pedido_itens"
}
