package entity

// RawOffer — оффер в том виде, в каком его предложила модель.
// Поля могут отсутствовать или быть мусором: отсутствующие числа приходят
// как NaN и отсеиваются при валидации.
type RawOffer struct {
	Retailer   string
	ProductURL string
	PackSize   float64
	BasePrice  float64
}

// ScoredOffer — оффер, прошедший валидацию, с ценой за единицу.
type ScoredOffer struct {
	RawOffer

	UnitPrice float64
}
