package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OrderUseCaseInterface define a interface para o use case
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, req OrderRequest) (OrderResponse, error)
	GetOrderByID(ctx context.Context, orderID int64) (OrderResponse, error)
	GetOrdersByDateAndAmount(ctx context.Context, query OrdersByDateAndAmountQuery) ([]OrderResponse, error)
	GetOrdersWithoutProductAndBetweenDates(ctx context.Context, query OrdersWithoutProductQuery) ([]OrderResponse, error)
}

// OrderHandler contém os handlers HTTP
type OrderHandler struct {
	useCase OrderUseCaseInterface
	tracer  trace.Tracer
}

// NewOrderHandler cria uma nova instância de OrderHandler
func NewOrderHandler(useCase OrderUseCaseInterface, tracer trace.Tracer) *OrderHandler {
	return &OrderHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// CreateOrder cria um novo pedido
// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("recipient", req.Recipient),
		attribute.Int("items", len(req.Items)),
	)

	response, err := h.useCase.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		h.writeError(c, err)
		return
	}

	span.SetAttributes(attribute.Int64("order_id", response.ID))
	c.JSON(http.StatusCreated, response)
}

// GetOrderByID busca um pedido pelo ID
// GET /orders/:id
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	response, err := h.useCase.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOrdersByDateAndAmount busca pedidos por data e valor mínimo
// GET /orders?date=2024-05-01&amount=100.00
func (h *OrderHandler) GetOrdersByDateAndAmount(c *gin.Context) {
	date, err := time.Parse(orderDateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	response, err := h.useCase.GetOrdersByDateAndAmount(c.Request.Context(), OrdersByDateAndAmountQuery{
		Date:   date,
		Amount: amount,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOrdersWithoutProductAndBetweenDates busca pedidos sem um produto em
// um intervalo de datas
// GET /orders/filter?productName=X&startDate=2024-05-01&endDate=2024-05-31
func (h *OrderHandler) GetOrdersWithoutProductAndBetweenDates(c *gin.Context) {
	productName := c.Query("productName")
	if productName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productName is required"})
		return
	}

	startDate, err := time.Parse(orderDateLayout, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, expected YYYY-MM-DD"})
		return
	}

	endDate, err := time.Parse(orderDateLayout, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, expected YYYY-MM-DD"})
		return
	}

	response, err := h.useCase.GetOrdersWithoutProductAndBetweenDates(c.Request.Context(), OrdersWithoutProductQuery{
		ProductName: productName,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck verifica a saúde do serviço
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-service",
	})
}

// writeError mapeia erros de negócio para códigos HTTP
func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNumberGeneratorUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
