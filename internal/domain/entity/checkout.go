package entity

// CheckoutResult — итог чекаута, восстановленный из ответа браузерного
// сервиса. Если из ответа не удалось извлечь JSON, заполнено только Raw.
type CheckoutResult struct {
	FinalPrice  *float64
	CheckoutURL string
	Raw         string
}
