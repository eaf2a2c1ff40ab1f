package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// DocumentUseCase registra documentos de soporte de un deudor. La clave de
// almacenamiento se genera con UUID; la verificación arranca en PENDING.
type DocumentUseCase struct {
	docs  repository.DocumentRepository
	users repository.UserRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docs repository.DocumentRepository, users repository.UserRepository) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, users: users}
}

// Create registra un documento para el deudor indicado.
func (uc *DocumentUseCase) Create(req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	debtor, err := uc.users.GetByID(req.DebtorID)
	if err != nil {
		return nil, err
	}
	if debtor == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, req.DebtorID)
	}

	doc := &entity.Document{
		DebtorID:           req.DebtorID,
		DocumentType:       req.DocumentType,
		DocumentPath:       "documents/" + uuid.New().String(),
		UploadDate:         time.Now(),
		VerificationStatus: entity.DocumentPending,
	}
	if err := uc.docs.Create(doc); err != nil {
		return nil, err
	}
	return dto.DocumentToResponse(doc), nil
}

// ListByDebtor devuelve los documentos de un deudor.
func (uc *DocumentUseCase) ListByDebtor(debtorID int64) ([]*dto.DocumentResponse, error) {
	debtor, err := uc.users.GetByID(debtorID)
	if err != nil {
		return nil, err
	}
	if debtor == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, debtorID)
	}
	docs, err := uc.docs.ListByDebtor(debtorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.DocumentToResponse(d))
	}
	return out, nil
}
