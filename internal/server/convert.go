package server

import (
	"shopscout/internal/domain/entity"
	"shopscout/pkg/lox"
	"shopscout/pkg/rest"
)

func newRESTReport(report entity.DealReport) rest.FindAndBuyResponse {
	return rest.FindAndBuyResponse{
		Query:      report.Query,
		Candidates: lox.Map(report.Candidates, newRESTOffer),
		Best:       newRESTOffer(report.Best),
		Checkout:   newRESTCheckout(report.Checkout),
	}
}

func newRESTOffer(offer entity.ScoredOffer) rest.Offer {
	return rest.Offer{
		Retailer:   offer.Retailer,
		ProductURL: offer.ProductURL,
		PackSize:   offer.PackSize,
		BasePrice:  offer.BasePrice,
		UnitPrice:  offer.UnitPrice,
	}
}

func newRESTCheckout(checkout entity.CheckoutResult) rest.Checkout {
	return rest.Checkout{
		FinalPrice:  checkout.FinalPrice,
		CheckoutURL: checkout.CheckoutURL,
		Raw:         checkout.Raw,
	}
}
