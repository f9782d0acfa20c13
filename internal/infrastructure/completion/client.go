package completion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"shopscout/internal/config"
	"shopscout/internal/domain/entity"
)

const offersPrompt = `Find up to 3 retailer offers in the US market for: %s.
Return a JSON array of objects with fields retailer, productUrl, packSize, basePrice.
packSize is the number of units in the pack, basePrice is the total price in USD.
No prose, JSON only.`

const systemPrompt = "You are a shopping assistant. Respond with JSON only."

// Client — клиент completion-сервиса. Одно обращение на запрос, без ретраев
// и без таймаута сверх транспортного.
type Client struct {
	cfg        config.Completion
	httpClient *http.Client
}

func NewClient(cfg config.Completion, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ProposeOffers запрашивает у модели до трёх офферов и нормализует ответ.
// Неразборчивый ответ — это пустой срез, а не ошибка: решение об отказе
// принимает вызывающая сторона.
func (c *Client) ProposeOffers(ctx context.Context, query string) ([]entity.RawOffer, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(offersPrompt, query)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("completion service status %d: %s", resp.StatusCode, respBytes)
	}

	var chat chatResponse

	if err := json.Unmarshal(respBytes, &chat); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if len(chat.Choices) == 0 {
		return nil, nil
	}

	return extractOffers(chat.Choices[0].Message.Content), nil
}
