package dto

import (
	"time"

	"github.com/kraya/platform-api/internal/domain/entity"
)

// CreateDocumentRequest entrada para registrar un documento de un deudor.
// La clave de almacenamiento la genera el use case (UUID).
type CreateDocumentRequest struct {
	DebtorID     int64  `json:"debtorId" validate:"required,gt=0"`
	DocumentType string `json:"documentType" validate:"required"`
}

// Validate aplica las reglas de campo del documento.
func (r *CreateDocumentRequest) Validate() error {
	return runValidation(r, map[string]string{
		"debtorId.required":     "Debtor is mandatory",
		"debtorId.gt":           "Debtor is mandatory",
		"documentType.required": "Document type is mandatory",
	})
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	DocumentID         int64     `json:"documentId"`
	DebtorID           int64     `json:"debtorId"`
	DocumentType       string    `json:"documentType"`
	DocumentPath       string    `json:"documentPath"`
	UploadDate         time.Time `json:"uploadDate"`
	VerificationStatus string    `json:"verificationStatus"`
}

// DocumentToResponse mapea la entidad al DTO de salida.
func DocumentToResponse(d *entity.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{
		DocumentID:         d.ID,
		DebtorID:           d.DebtorID,
		DocumentType:       d.DocumentType,
		DocumentPath:       d.DocumentPath,
		UploadDate:         d.UploadDate,
		VerificationStatus: d.VerificationStatus,
	}
}

// CreateRecommendationRequest entrada para recomendar a un deudor.
type CreateRecommendationRequest struct {
	DebtorID   int64  `json:"debtorId" validate:"required,gt=0"`
	CreditorID int64  `json:"creditorId" validate:"required,gt=0"`
	Comment    string `json:"comment,omitempty"`
}

// Validate aplica las reglas de campo de la recomendación.
func (r *CreateRecommendationRequest) Validate() error {
	return runValidation(r, map[string]string{
		"debtorId.required":   "Debtor is mandatory",
		"debtorId.gt":         "Debtor is mandatory",
		"creditorId.required": "Creditor is mandatory",
		"creditorId.gt":       "Creditor is mandatory",
	})
}

// RecommendationResponse salida de una recomendación.
type RecommendationResponse struct {
	RecommendationID   int64     `json:"recommendationId"`
	DebtorID           int64     `json:"debtorId"`
	CreditorID         int64     `json:"creditorId"`
	Comment            string    `json:"comment,omitempty"`
	RecommendationDate time.Time `json:"recommendationDate"`
}

// RecommendationToResponse mapea la entidad al DTO de salida.
func RecommendationToResponse(r *entity.Recommendation) *RecommendationResponse {
	if r == nil {
		return nil
	}
	return &RecommendationResponse{
		RecommendationID:   r.ID,
		DebtorID:           r.DebtorID,
		CreditorID:         r.CreditorID,
		Comment:            r.Comment,
		RecommendationDate: r.RecommendationDate,
	}
}

// CreateVoteRequest entrada para votar sobre un deudor.
type CreateVoteRequest struct {
	DebtorID   int64  `json:"debtorId" validate:"required,gt=0"`
	CreditorID int64  `json:"creditorId" validate:"required,gt=0"`
	Approve    bool   `json:"approve"`
	Comment    string `json:"comment,omitempty"`
}

// Validate aplica las reglas de campo del voto.
func (r *CreateVoteRequest) Validate() error {
	return runValidation(r, map[string]string{
		"debtorId.required":   "Debtor is mandatory",
		"debtorId.gt":         "Debtor is mandatory",
		"creditorId.required": "Creditor is mandatory",
		"creditorId.gt":       "Creditor is mandatory",
	})
}

// VoteResponse salida de un voto.
type VoteResponse struct {
	VoteID     int64     `json:"voteId"`
	DebtorID   int64     `json:"debtorId"`
	CreditorID int64     `json:"creditorId"`
	Approve    bool      `json:"approve"`
	Comment    string    `json:"comment,omitempty"`
	VoteDate   time.Time `json:"voteDate"`
}

// VoteToResponse mapea la entidad al DTO de salida.
func VoteToResponse(v *entity.Vote) *VoteResponse {
	if v == nil {
		return nil
	}
	return &VoteResponse{
		VoteID:     v.ID,
		DebtorID:   v.DebtorID,
		CreditorID: v.CreditorID,
		Approve:    v.Approve,
		Comment:    v.Comment,
		VoteDate:   v.VoteDate,
	}
}
