package main

// Conversões puras entre os formatos da API e as entidades persistidas.
// A referência do item ao pedido (OrderID) não é preenchida aqui: ela é
// resolvida pela camada de persistência ao salvar.

const orderDateLayout = "2006-01-02"

// ToOrderEntity converte uma requisição em entidade Order
func ToOrderEntity(req OrderRequest) *Order {
	items := make([]OrderDetails, len(req.Items))
	for i, item := range req.Items {
		items[i] = OrderDetails{
			ArticleID:   item.ArticleID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &Order{
		Recipient:       req.Recipient,
		DeliveryAddress: req.DeliveryAddress,
		PaymentType:     PaymentType(req.PaymentType),
		DeliveryType:    DeliveryType(req.DeliveryType),
		Items:           items,
	}
}

// ToOrderResponse converte uma entidade Order em resposta da API
func ToOrderResponse(order *Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ArticleID:   item.ArticleID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
		OrderDate:       order.OrderDate.Format(orderDateLayout),
		Recipient:       order.Recipient,
		DeliveryAddress: order.DeliveryAddress,
		PaymentType:     string(order.PaymentType),
		DeliveryType:    string(order.DeliveryType),
		Items:           items,
	}
}

// ToOrderResponseList converte uma lista de pedidos preservando ordem e
// tamanho. Entrada vazia produz lista vazia, nunca nil.
func ToOrderResponseList(orders []*Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses
}
