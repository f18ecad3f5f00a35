package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// NumberGenerator abstrai a obtenção de números de pedido do serviço externo
type NumberGenerator interface {
	NextOrderNumber(ctx context.Context) (string, error)
}

// NumberGeneratorClient implementa NumberGenerator via HTTP síncrono.
// Sucesso é 200 com corpo não vazio, retornado verbatim como número do
// pedido. Qualquer outra resposta é falha; não há retry nem fallback.
type NumberGeneratorClient struct {
	client *resty.Client
}

// NewNumberGeneratorClient cria uma nova instância de NumberGeneratorClient
func NewNumberGeneratorClient(baseURL string, timeout time.Duration) *NumberGeneratorClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &NumberGeneratorClient{
		client: client,
	}
}

// NextOrderNumber obtém um novo número de pedido do number-generate-service
func (c *NumberGeneratorClient) NextOrderNumber(ctx context.Context) (string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/numbers")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNumberGeneratorUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrNumberGeneratorUnavailable, resp.StatusCode())
	}

	number := string(resp.Body())
	if number == "" {
		return "", fmt.Errorf("%w: empty response body", ErrNumberGeneratorUnavailable)
	}
	return number, nil
}
