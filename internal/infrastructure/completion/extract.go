package completion

import (
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"shopscout/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Ключи-обёртки, под которыми модель иногда прячет массив офферов.
// Голый массив всегда в приоритете.
var wrapperKeys = []string{"items", "results", "offers", "data"} //nolint:gochecknoglobals

// extractOffers разбирает текст ответа модели в список сырых офферов.
// Перечисляет принимаемые формы явно: голый массив, массив под известным
// ключом-обёрткой. Всё остальное — пустой срез.
func extractOffers(content string) []entity.RawOffer {
	var payload any

	if err := json.UnmarshalFromString(stripFences(content), &payload); err != nil {
		return nil
	}

	items, ok := offerItems(payload)
	if !ok {
		return nil
	}

	offers := make([]entity.RawOffer, 0, len(items))

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		offers = append(offers, entity.RawOffer{
			Retailer:   asString(m["retailer"]),
			ProductURL: asString(m["productUrl"]),
			PackSize:   asNumber(m["packSize"]),
			BasePrice:  asNumber(m["basePrice"]),
		})
	}

	return offers
}

func offerItems(payload any) ([]any, bool) {
	switch v := payload.(type) {
	case []any:
		return v, true
	case map[string]any:
		for _, key := range wrapperKeys {
			if inner, ok := v[key].([]any); ok {
				return inner, true
			}
		}
	}

	return nil, false
}

// stripFences убирает markdown-ограждения, которыми модели любят обрамлять JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumber приводит числа и числовые строки к float64. Всё остальное — NaN,
// чтобы оффер отсеялся на валидации.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}
