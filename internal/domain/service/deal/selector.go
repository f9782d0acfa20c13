package deal

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"shopscout/internal/domain/entity"
	"shopscout/pkg/lox"
)

// ScoreOffers отсеивает офферы без валидной цены или фасовки, считает цену
// за единицу и сортирует по возрастанию. Сортировка стабильная: при равной
// цене сохраняется исходный порядок.
func ScoreOffers(offers []entity.RawOffer) []entity.ScoredOffer {
	valid := lo.Filter(offers, func(offer entity.RawOffer, _ int) bool {
		return isFinite(offer.BasePrice) && isFinite(offer.PackSize) && offer.PackSize > 0
	})

	scored := lox.Map(valid, func(offer entity.RawOffer) entity.ScoredOffer {
		return entity.ScoredOffer{
			RawOffer:  offer,
			UnitPrice: offer.BasePrice / offer.PackSize,
		}
	})

	slices.SortStableFunc(scored, func(a, b entity.ScoredOffer) int {
		return cmp.Compare(a.UnitPrice, b.UnitPrice)
	})

	return scored
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
