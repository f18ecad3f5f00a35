package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest representa a requisição para criar um pedido.
// Número do pedido, data e total são atribuídos pelo servidor,
// nunca aceitos do cliente.
type OrderRequest struct {
	Recipient       string             `json:"recipient" binding:"required"`
	DeliveryAddress string             `json:"deliveryAddress" binding:"required"`
	PaymentType     string             `json:"paymentType" binding:"required,oneof=CARD CASH ONLINE"`
	DeliveryType    string             `json:"deliveryType" binding:"required,oneof=COURIER PICKUP"`
	Items           []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// OrderItemRequest representa um item da requisição de pedido
type OrderItemRequest struct {
	ArticleID   int64           `json:"articleId" binding:"required"`
	ProductName string          `json:"productName" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderResponse representa um pedido na resposta da API
type OrderResponse struct {
	ID              int64               `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	OrderDate       string              `json:"orderDate"`
	Recipient       string              `json:"recipient"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentType     string              `json:"paymentType"`
	DeliveryType    string              `json:"deliveryType"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderItemResponse representa um item do pedido na resposta da API.
// Identificadores internos e a referência ao pedido não são expostos.
type OrderItemResponse struct {
	ArticleID   int64           `json:"articleId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrdersByDateAndAmountQuery são os parâmetros já validados da busca por
// data e valor mínimo
type OrdersByDateAndAmountQuery struct {
	Date   time.Time
	Amount decimal.Decimal
}

// OrdersWithoutProductQuery são os parâmetros já validados da busca por
// produto excluído em um intervalo de datas
type OrdersWithoutProductQuery struct {
	ProductName string
	StartDate   time.Time
	EndDate     time.Time
}
