package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"shopscout/internal/domain/entity"
	"shopscout/pkg/errcodes"
	"shopscout/pkg/httpx/reply"
	"shopscout/pkg/httpx/req"
	"shopscout/pkg/rest"
)

type dealService interface {
	FindBestDeal(ctx context.Context, query string) (entity.DealReport, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postFindAndBuy(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FindAndBuyRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	query, ok := request.Query.(string)
	if !ok || query == "" {
		return failure.NewInvalidArgumentError(
			"query must be a non-empty string",
			failure.WithCode(errcodes.MissingQuery),
			failure.WithDescription("Missing 'query' string"),
		)
	}

	report, err := s.dealService.FindBestDeal(ctx, query)
	if err != nil {
		return fmt.Errorf("dealService.FindBestDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTReport(report))

	return nil
}
