package automation

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"shopscout/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Ключи, под которыми сервис может вложить результат.
var nestingKeys = []string{"result", "data"} //nolint:gochecknoglobals

// extractCheckout восстанавливает итог чекаута из ответа, форма которого
// контрактом не зафиксирована. Перебираем формы по порядку: объект с полями,
// объект под result/data, строка со встроенным JSON. Если JSON извлечь не
// удалось — деградируем до сырого текста, запрос при этом не падает.
func extractCheckout(body []byte) entity.CheckoutResult {
	var payload any

	if err := json.Unmarshal(body, &payload); err != nil {
		return entity.CheckoutResult{Raw: string(body)}
	}

	return checkoutFromValue(payload, string(body))
}

func checkoutFromValue(payload any, raw string) entity.CheckoutResult {
	switch v := payload.(type) {
	case map[string]any:
		if result, ok := checkoutFromObject(v); ok {
			return result
		}

		for _, key := range nestingKeys {
			if inner, exists := v[key]; exists {
				return checkoutFromValue(inner, raw)
			}
		}

		return entity.CheckoutResult{Raw: raw}
	case string:
		if span, ok := jsonSpan(v); ok {
			var inner map[string]any

			if err := json.UnmarshalFromString(span, &inner); err == nil {
				if result, ok := checkoutFromObject(inner); ok {
					return result
				}
			}
		}

		return entity.CheckoutResult{Raw: v}
	default:
		return entity.CheckoutResult{Raw: raw}
	}
}

func checkoutFromObject(m map[string]any) (entity.CheckoutResult, bool) {
	var result entity.CheckoutResult

	if price, ok := asNumber(m["finalPrice"]); ok {
		result.FinalPrice = &price
	}

	if url, ok := m["checkoutUrl"].(string); ok {
		result.CheckoutURL = url
	}

	if result.FinalPrice == nil && result.CheckoutURL == "" {
		return entity.CheckoutResult{}, false
	}

	return result, true
}

// jsonSpan выделяет первый {...} фрагмент: от первой '{' до последней '}'.
func jsonSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start < 0 || end < start {
		return "", false
	}

	return s[start : end+1], true
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}
