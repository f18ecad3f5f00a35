package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderNumber(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/numbers", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ORD-2024-0001"))
	}))
	defer server.Close()

	client := NewNumberGeneratorClient(server.URL, 2*time.Second)

	// Act
	number, err := client.NextOrderNumber(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2024-0001", number)
}

func TestNextOrderNumber_ServerError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewNumberGeneratorClient(server.URL, 2*time.Second)

	// Act
	_, err := client.NextOrderNumber(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrNumberGeneratorUnavailable)
}

func TestNextOrderNumber_EmptyBody(t *testing.T) {
	// Arrange: 200 with an empty body is still a failure
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewNumberGeneratorClient(server.URL, 2*time.Second)

	// Act
	_, err := client.NextOrderNumber(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrNumberGeneratorUnavailable)
}

func TestNextOrderNumber_ConnectionRefused(t *testing.T) {
	// Arrange: server already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewNumberGeneratorClient(server.URL, 2*time.Second)

	// Act
	_, err := client.NextOrderNumber(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrNumberGeneratorUnavailable)
}
