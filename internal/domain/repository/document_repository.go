package repository

import "github.com/kraya/platform-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	ListByDebtor(debtorID int64) ([]*entity.Document, error)
}

// RecommendationRepository define el puerto de persistencia para Recommendation.
type RecommendationRepository interface {
	Create(rec *entity.Recommendation) error
	ListByDebtor(debtorID int64) ([]*entity.Recommendation, error)
}

// VoteRepository define el puerto de persistencia para Vote.
type VoteRepository interface {
	Create(vote *entity.Vote) error
	ListByDebtor(debtorID int64) ([]*entity.Vote, error)
}
