package main

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateTotal(t *testing.T) {
	// Arrange
	order := &Order{
		Items: []OrderDetails{
			{ProductName: "keyboard", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductName: "mouse pad", Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
		},
	}

	// Act
	total := order.CalculateTotal()

	// Assert
	expected := decimal.RequireFromString("25.50")
	if !total.Equal(expected) {
		t.Errorf("Expected total %s, got %s", expected, total)
	}
}

func TestCalculateTotalNoItems(t *testing.T) {
	order := &Order{}

	total := order.CalculateTotal()

	if !total.Equal(decimal.Zero) {
		t.Errorf("Expected zero total for order without items, got %s", total)
	}
}

func TestCalculateTotalExactDecimal(t *testing.T) {
	// 0.1 + 0.2 style sums must stay exact, no float rounding
	order := &Order{
		Items: []OrderDetails{
			{Quantity: 1, UnitPrice: decimal.RequireFromString("0.10")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("0.20")},
		},
	}

	total := order.CalculateTotal()

	if total.String() != "0.3" {
		t.Errorf("Expected exact total 0.3, got %s", total)
	}
}

func TestSubtotal(t *testing.T) {
	item := OrderDetails{Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")}

	subtotal := item.Subtotal()

	expected := decimal.RequireFromString("59.97")
	if !subtotal.Equal(expected) {
		t.Errorf("Expected subtotal %s, got %s", expected, subtotal)
	}
}

func TestEnumSymbolicNames(t *testing.T) {
	// Test that constants are defined correctly
	if PaymentTypeCard != "CARD" {
		t.Errorf("Expected PaymentTypeCard to be 'CARD', got %s", PaymentTypeCard)
	}
	if PaymentTypeCash != "CASH" {
		t.Errorf("Expected PaymentTypeCash to be 'CASH', got %s", PaymentTypeCash)
	}
	if PaymentTypeOnline != "ONLINE" {
		t.Errorf("Expected PaymentTypeOnline to be 'ONLINE', got %s", PaymentTypeOnline)
	}
	if DeliveryTypeCourier != "COURIER" {
		t.Errorf("Expected DeliveryTypeCourier to be 'COURIER', got %s", DeliveryTypeCourier)
	}
	if DeliveryTypePickup != "PICKUP" {
		t.Errorf("Expected DeliveryTypePickup to be 'PICKUP', got %s", DeliveryTypePickup)
	}
}
