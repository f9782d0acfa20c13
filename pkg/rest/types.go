// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// FindAndBuyRequest Тело запроса POST /api/find-and-buy.
// Query оставлен как any: отсутствие и не-строка различаются на уровне хэндлера.
type FindAndBuyRequest struct {
	Query any `json:"query"`
}

// Offer Кандидат с рассчитанной ценой за единицу
type Offer struct {
	Retailer   string  `json:"retailer"`
	ProductURL string  `json:"productUrl"`
	PackSize   float64 `json:"packSize"`
	BasePrice  float64 `json:"basePrice"`
	UnitPrice  float64 `json:"unitPrice"`
}

// Checkout Итог чекаута. При деградации нормализации заполнено только Raw.
type Checkout struct {
	FinalPrice  *float64 `json:"finalPrice,omitempty"`
	CheckoutURL string   `json:"checkoutUrl,omitempty"`
	Raw         string   `json:"raw,omitempty"`
}

type FindAndBuyResponse struct {
	Query      string   `json:"query"`
	Candidates []Offer  `json:"candidates"`
	Best       Offer    `json:"best"`
	Checkout   Checkout `json:"checkout"`
}

// Error Модель ошибок
type Error struct {
	// Error Сообщение об ошибке (для отображения в UI)
	Error string `json:"error"`

	// Details Сырое тело ответа апстрима, если оно есть
	Details string `json:"details,omitempty"`
}
