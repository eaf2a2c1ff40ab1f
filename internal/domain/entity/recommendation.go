package entity

import "time"

// Recommendation es una recomendación de un acreedor sobre un deudor.
type Recommendation struct {
	ID                 int64
	DebtorID           int64
	CreditorID         int64
	Comment            string // opcional
	RecommendationDate time.Time
}
