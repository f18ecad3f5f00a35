package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType representa a forma de pagamento de um pedido
type PaymentType string

const (
	PaymentTypeCard   PaymentType = "CARD"
	PaymentTypeCash   PaymentType = "CASH"
	PaymentTypeOnline PaymentType = "ONLINE"
)

// DeliveryType representa a forma de entrega de um pedido
type DeliveryType string

const (
	DeliveryTypeCourier DeliveryType = "COURIER"
	DeliveryTypePickup  DeliveryType = "PICKUP"
)

// Order representa um pedido no sistema
type Order struct {
	ID              int64           `json:"id" db:"id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	OrderDate       time.Time       `json:"order_date" db:"order_date"`
	Recipient       string          `json:"recipient" db:"recipient"`
	DeliveryAddress string          `json:"delivery_address" db:"delivery_address"`
	PaymentType     PaymentType     `json:"payment_type" db:"payment_type"`
	DeliveryType    DeliveryType    `json:"delivery_type" db:"delivery_type"`
	Items           []OrderDetails  `json:"items"`
}

// OrderDetails representa um item de um pedido
type OrderDetails struct {
	ID          int64           `json:"id" db:"id"`
	OrderID     int64           `json:"order_id" db:"order_id"`
	ArticleID   int64           `json:"article_id" db:"article_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
}

// Subtotal retorna o valor do item (preço unitário x quantidade)
func (d OrderDetails) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// CalculateTotal soma os subtotais de todos os itens do pedido.
// Um pedido sem itens tem total zero.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
