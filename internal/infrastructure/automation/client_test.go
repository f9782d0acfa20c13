package automation_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"shopscout/internal/config"
	"shopscout/internal/domain"
	"shopscout/internal/domain/entity"
	"shopscout/internal/infrastructure/automation"
	"shopscout/pkg/errcodes"
	"shopscout/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func testOffer() entity.ScoredOffer {
	return entity.ScoredOffer{
		RawOffer: entity.RawOffer{
			Retailer:   "BoxMart",
			ProductURL: "https://boxmart.example/a",
			PackSize:   24,
			BasePrice:  12.99,
		},
		UnitPrice: 12.99 / 24,
	}
}

func TestClientVerifyCheckout(t *testing.T) {
	rq := require.New(t)

	var gotPath, gotAuth string
	var gotBody []byte

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"finalPrice":13.48,"checkoutUrl":"https://boxmart.example/checkout"}}`))
	}))
	defer httpServer.Close()

	client := automation.NewClient(config.Automation{
		APIKey:    "task-key",
		BaseURL:   httpServer.URL,
		TasksPath: "/api/v1/run-task",
		MaxSteps:  25,
	}, &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(
			http.DefaultTransport,
			httpx.NewStaticTokenAuthenticator("task-key"),
		),
	})

	result, err := client.VerifyCheckout(context.Background(), testOffer(), "sparkling water 24 pack")
	rq.NoError(err)

	rq.Equal("/api/v1/run-task", gotPath)
	rq.Equal("Bearer task-key", gotAuth)

	var request map[string]any
	rq.NoError(json.Unmarshal(gotBody, &request))

	instructions, ok := request["instructions"].(string)
	rq.True(ok)

	// Инструкции содержат адрес товара, исходный запрос для выбора варианта
	// и явный запрет на оформление заказа.
	rq.Contains(instructions, "https://boxmart.example/a")
	rq.Contains(instructions, "sparkling water 24 pack")
	rq.Contains(instructions, "Do not place")
	rq.Contains(instructions, "exactly one unit")

	rq.Equal(25.0, request["maxSteps"])
	rq.Equal(true, request["returnJson"])

	rq.NotNil(result.FinalPrice)
	rq.Equal(13.48, *result.FinalPrice)
	rq.Equal("https://boxmart.example/checkout", result.CheckoutURL)
}

func TestClientVerifyCheckoutNonSuccessStatus(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"session quota exceeded"}`))
	}))
	defer httpServer.Close()

	client := automation.NewClient(config.Automation{
		BaseURL:   httpServer.URL,
		TasksPath: "/api/v1/run-task",
	}, nil)

	_, err := client.VerifyCheckout(context.Background(), testOffer(), "anything")

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.AutomationCallFailed, appErr.Code)
	rq.Equal("Automation task failed", appErr.Message)
	rq.Equal(`{"error":"session quota exceeded"}`, appErr.Details)
}

func TestClientVerifyCheckoutDegradesToRaw(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("the agent navigated but found nothing"))
	}))
	defer httpServer.Close()

	client := automation.NewClient(config.Automation{
		BaseURL:   httpServer.URL,
		TasksPath: "/api/v1/run-task",
	}, nil)

	result, err := client.VerifyCheckout(context.Background(), testOffer(), "anything")
	rq.NoError(err)
	rq.Nil(result.FinalPrice)
	rq.Equal("the agent navigated but found nothing", result.Raw)
}
