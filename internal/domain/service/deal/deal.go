package deal

import (
	"context"
	"fmt"

	"shopscout/internal/domain"
	"shopscout/internal/domain/entity"
	"shopscout/pkg/contextx"
	"shopscout/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type OfferProposer interface {
	ProposeOffers(ctx context.Context, query string) ([]entity.RawOffer, error)
}

type CheckoutVerifier interface {
	VerifyCheckout(ctx context.Context, offer entity.ScoredOffer, query string) (entity.CheckoutResult, error)
}

// Service прогоняет запрос через три стадии: предложение офферов моделью,
// выбор лучшего по цене за единицу, проверка чекаута браузерным сервисом.
// Состояния между запросами нет.
type Service struct {
	proposer OfferProposer
	verifier CheckoutVerifier
}

func NewService(proposer OfferProposer, verifier CheckoutVerifier) *Service {
	return &Service{
		proposer: proposer,
		verifier: verifier,
	}
}

func (s *Service) FindBestDeal(ctx context.Context, query string) (entity.DealReport, error) {
	offers, err := s.proposer.ProposeOffers(ctx, query)
	if err != nil {
		return entity.DealReport{}, fmt.Errorf("proposer.ProposeOffers: %w", err)
	}

	if len(offers) == 0 {
		return entity.DealReport{}, domain.NewError(errcodes.NoCandidates, "LLM returned no candidates")
	}

	candidates := ScoreOffers(offers)
	if len(candidates) == 0 {
		return entity.DealReport{}, domain.NewError(errcodes.NoPricedCandidates, "Candidates missing price/packSize")
	}

	best := candidates[0]

	logger(ctx).Info("best offer selected",
		"retailer", best.Retailer,
		"unit_price", best.UnitPrice,
		"candidates", len(candidates),
	)

	checkout, err := s.verifier.VerifyCheckout(ctx, best, query)
	if err != nil {
		return entity.DealReport{}, fmt.Errorf("verifier.VerifyCheckout: %w", err)
	}

	return entity.DealReport{
		Query:      query,
		Candidates: candidates,
		Best:       best,
		Checkout:   checkout,
	}, nil
}
