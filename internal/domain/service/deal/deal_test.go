package deal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"shopscout/internal/domain"
	"shopscout/internal/domain/entity"
	"shopscout/internal/domain/service/deal"
	"shopscout/pkg/errcodes"
)

type stubProposer struct {
	offers []entity.RawOffer
	err    error
}

func (s stubProposer) ProposeOffers(context.Context, string) ([]entity.RawOffer, error) {
	return s.offers, s.err
}

type stubVerifier struct {
	result entity.CheckoutResult
	err    error

	gotOffer entity.ScoredOffer
	gotQuery string
}

func (s *stubVerifier) VerifyCheckout(_ context.Context, offer entity.ScoredOffer, query string) (entity.CheckoutResult, error) {
	s.gotOffer = offer
	s.gotQuery = query

	return s.result, s.err
}

func TestServiceFindBestDeal(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	finalPrice := 12.5

	proposer := stubProposer{
		offers: []entity.RawOffer{
			{Retailer: "BoxMart", ProductURL: "https://boxmart.example/a", BasePrice: 30, PackSize: 100},
			{Retailer: "PackShop", ProductURL: "https://packshop.example/b", BasePrice: 20, PackSize: 50},
		},
	}
	verifier := &stubVerifier{
		result: entity.CheckoutResult{
			FinalPrice:  &finalPrice,
			CheckoutURL: "https://boxmart.example/checkout",
		},
	}

	service := deal.NewService(proposer, verifier)

	report, err := service.FindBestDeal(ctx, "sparkling water 100 pack")
	rq.NoError(err)

	rq.Equal("sparkling water 100 pack", report.Query)
	rq.Len(report.Candidates, 2)
	rq.Equal(report.Candidates[0], report.Best)
	rq.Equal("BoxMart", report.Best.Retailer)
	rq.InDelta(0.3, report.Best.UnitPrice, 1e-9)

	// Верификатору ушёл именно лучший оффер и исходный запрос.
	rq.Equal(report.Best, verifier.gotOffer)
	rq.Equal("sparkling water 100 pack", verifier.gotQuery)

	rq.Equal(&finalPrice, report.Checkout.FinalPrice)
	rq.Equal("https://boxmart.example/checkout", report.Checkout.CheckoutURL)
}

func TestServiceFindBestDealNoCandidates(t *testing.T) {
	rq := require.New(t)

	service := deal.NewService(stubProposer{}, &stubVerifier{})

	_, err := service.FindBestDeal(context.Background(), "anything")

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.NoCandidates, appErr.Code)
	rq.Equal("LLM returned no candidates", appErr.Message)
}

func TestServiceFindBestDealNoPricedCandidates(t *testing.T) {
	rq := require.New(t)

	proposer := stubProposer{
		offers: []entity.RawOffer{
			{Retailer: "BoxMart", BasePrice: 40, PackSize: 0},
		},
	}

	service := deal.NewService(proposer, &stubVerifier{})

	_, err := service.FindBestDeal(context.Background(), "anything")

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.NoPricedCandidates, appErr.Code)
	rq.Equal("Candidates missing price/packSize", appErr.Message)
}

func TestServiceFindBestDealVerifierError(t *testing.T) {
	rq := require.New(t)

	proposer := stubProposer{
		offers: []entity.RawOffer{
			{Retailer: "BoxMart", BasePrice: 10, PackSize: 2},
		},
	}
	verifier := &stubVerifier{
		err: domain.NewError(errcodes.AutomationCallFailed, "Automation task failed").WithDetails("boom"),
	}

	service := deal.NewService(proposer, verifier)

	_, err := service.FindBestDeal(context.Background(), "anything")

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.AutomationCallFailed, appErr.Code)
	rq.Equal("boom", appErr.Details)
}

func TestServiceFindBestDealProposerError(t *testing.T) {
	rq := require.New(t)

	service := deal.NewService(stubProposer{err: errors.New("connection refused")}, &stubVerifier{})

	_, err := service.FindBestDeal(context.Background(), "anything")
	rq.ErrorContains(err, "proposer.ProposeOffers")
	rq.False(domain.IsAppError(err))
}

func TestServiceFindBestDealIdempotent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	proposer := stubProposer{
		offers: []entity.RawOffer{
			{Retailer: "A", BasePrice: 30, PackSize: 100},
			{Retailer: "B", BasePrice: 20, PackSize: 50},
			{Retailer: "C", BasePrice: 10, PackSize: 25},
		},
	}

	service := deal.NewService(proposer, &stubVerifier{})

	first, err := service.FindBestDeal(ctx, "same query")
	rq.NoError(err)

	second, err := service.FindBestDeal(ctx, "same query")
	rq.NoError(err)

	rq.Equal(first.Candidates, second.Candidates)
	rq.Equal(first.Best, second.Best)
}
