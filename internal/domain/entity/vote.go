package entity

import "time"

// Vote es el voto (a favor o en contra) de un acreedor sobre un deudor.
type Vote struct {
	ID         int64
	DebtorID   int64
	CreditorID int64
	Approve    bool
	Comment    string // opcional
	VoteDate   time.Time
}
