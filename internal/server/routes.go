package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopscout/internal/domain"
	"shopscout/pkg/contextx"
	"shopscout/pkg/httpx/reply"
	"shopscout/pkg/logx"
	"shopscout/pkg/rest"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/find-and-buy", handler(s.postFindAndBuy))
	})
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			ctx := r.Context()

			// Отказы апстримов — это 502 с человекочитаемой причиной,
			// остальное разбирает reply.Error.
			var appErr *domain.AppError
			if errors.As(err, &appErr) {
				logger(ctx).Error("upstream failure", logx.Error(err))

				reply.JSON(ctx, w, http.StatusBadGateway, rest.Error{
					Error:   appErr.Message,
					Details: appErr.Details,
				})

				return
			}

			reply.Error(ctx, w, err)
		}
	}
}
