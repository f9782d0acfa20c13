package automation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"shopscout/internal/config"
	"shopscout/internal/domain"
	"shopscout/internal/domain/entity"
	"shopscout/pkg/errcodes"
)

// taskInstructions — контракт, отправляемый браузерному агенту. Запрет на
// оформление заказа — рекомендация агенту, а не гарантия с нашей стороны.
const taskInstructions = `Open %s. If the page offers variant or size options, pick the one matching: %q.
Add exactly one unit to the cart and proceed to the checkout page.
Read the displayed order total, including shipping and tax if shown.
Respond with JSON: {"finalPrice": <number>, "checkoutUrl": "<current page url>"}.
Do not place, confirm or pay for the order under any circumstances.`

// Client — клиент браузерного сервиса. Схема запроса у сервиса отличается
// между аккаунтами, поэтому адрес задаётся конфигом, а разбор ответа
// перечисляет все известные формы.
type Client struct {
	cfg        config.Automation
	httpClient *http.Client
}

func NewClient(cfg config.Automation, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

type taskRequest struct {
	Instructions string `json:"instructions"`
	MaxSteps     int    `json:"maxSteps,omitempty"`
	ReturnJSON   bool   `json:"returnJson,omitempty"`
}

func (c *Client) VerifyCheckout(ctx context.Context, offer entity.ScoredOffer, query string) (entity.CheckoutResult, error) {
	body, err := json.Marshal(taskRequest{
		Instructions: fmt.Sprintf(taskInstructions, offer.ProductURL, query),
		MaxSteps:     c.cfg.MaxSteps,
		ReturnJSON:   true,
	})
	if err != nil {
		return entity.CheckoutResult{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+c.cfg.TasksPath, bytes.NewReader(body))
	if err != nil {
		return entity.CheckoutResult{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.CheckoutResult{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.CheckoutResult{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.CheckoutResult{}, domain.
			NewError(errcodes.AutomationCallFailed, "Automation task failed").
			WithDetails(string(respBytes))
	}

	return extractCheckout(respBytes), nil
}
