package postgres

import (
	"context"
	"fmt"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste un documento y asigna el ID generado.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (debtor_id, document_type, document_path, upload_date, verification_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING document_id`
	err := r.q.QueryRow(context.Background(), query,
		doc.DebtorID, doc.DocumentType, doc.DocumentPath, doc.UploadDate, doc.VerificationStatus,
	).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los documentos de un deudor.
func (r *DocumentRepo) ListByDebtor(debtorID int64) ([]*entity.Document, error) {
	query := `
		SELECT document_id, debtor_id, document_type, document_path, upload_date, verification_status
		FROM documents WHERE debtor_id = $1 ORDER BY upload_date`
	rows, err := r.q.Query(context.Background(), query, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.DebtorID, &d.DocumentType, &d.DocumentPath, &d.UploadDate, &d.VerificationStatus); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
