package entity

// DealReport — полный результат одного прогона пайплайна.
type DealReport struct {
	Query      string
	Candidates []ScoredOffer
	Best       ScoredOffer
	Checkout   CheckoutResult
}
