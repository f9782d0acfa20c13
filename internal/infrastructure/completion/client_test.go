package completion_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"shopscout/internal/config"
	"shopscout/internal/infrastructure/completion"
	"shopscout/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func authedClient(token string) *http.Client {
	return &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(
			http.DefaultTransport,
			httpx.NewStaticTokenAuthenticator(token),
		),
	}
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})

	return string(b)
}

func TestClientProposeOffers(t *testing.T) {
	rq := require.New(t)

	var gotPath, gotAuth string
	var gotBody []byte

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`{"items":[{"retailer":"BoxMart","productUrl":"https://boxmart.example/a","packSize":24,"basePrice":12.99}]}`)))
	}))
	defer httpServer.Close()

	client := completion.NewClient(config.Completion{
		APIKey:  "test-key",
		BaseURL: httpServer.URL,
		Model:   "gpt-4o-mini",
	}, authedClient("test-key"))

	offers, err := client.ProposeOffers(context.Background(), "sparkling water 24 pack")
	rq.NoError(err)

	rq.Equal("/chat/completions", gotPath)
	rq.Equal("Bearer test-key", gotAuth)

	var request map[string]any
	rq.NoError(json.Unmarshal(gotBody, &request))
	rq.Equal("gpt-4o-mini", request["model"])
	rq.Contains(string(gotBody), "sparkling water 24 pack")
	rq.Contains(string(gotBody), "json_object")

	rq.Len(offers, 1)
	rq.Equal("BoxMart", offers[0].Retailer)
	rq.Equal(24.0, offers[0].PackSize)
	rq.Equal(12.99, offers[0].BasePrice)
}

func TestClientProposeOffersUnusableReply(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(chatReply("I could not find anything, sorry")))
	}))
	defer httpServer.Close()

	client := completion.NewClient(config.Completion{BaseURL: httpServer.URL}, nil)

	offers, err := client.ProposeOffers(context.Background(), "anything")
	rq.NoError(err)
	rq.Empty(offers)
}

func TestClientProposeOffersNoChoices(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer httpServer.Close()

	client := completion.NewClient(config.Completion{BaseURL: httpServer.URL}, nil)

	offers, err := client.ProposeOffers(context.Background(), "anything")
	rq.NoError(err)
	rq.Empty(offers)
}

func TestClientProposeOffersTransportFailure(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer httpServer.Close()

	client := completion.NewClient(config.Completion{BaseURL: httpServer.URL}, nil)

	_, err := client.ProposeOffers(context.Background(), "anything")
	rq.ErrorContains(err, "completion service status 429")
}
