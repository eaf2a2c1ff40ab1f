package usecase

import (
	"fmt"
	"time"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

// FeedbackUseCase crea y lista recomendaciones y votos de acreedores sobre
// deudores. Solo create/read; no hay ciclo de vida adicional.
type FeedbackUseCase struct {
	recs  repository.RecommendationRepository
	votes repository.VoteRepository
	users repository.UserRepository
}

// NewFeedbackUseCase construye el caso de uso.
func NewFeedbackUseCase(recs repository.RecommendationRepository, votes repository.VoteRepository, users repository.UserRepository) *FeedbackUseCase {
	return &FeedbackUseCase{recs: recs, votes: votes, users: users}
}

func (uc *FeedbackUseCase) requireUser(id int64) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w with ID: %d", domain.ErrUserNotFound, id)
	}
	return nil
}

// CreateRecommendation registra una recomendación acreedor → deudor.
func (uc *FeedbackUseCase) CreateRecommendation(req dto.CreateRecommendationRequest) (*dto.RecommendationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := uc.requireUser(req.DebtorID); err != nil {
		return nil, err
	}
	if err := uc.requireUser(req.CreditorID); err != nil {
		return nil, err
	}
	rec := &entity.Recommendation{
		DebtorID:           req.DebtorID,
		CreditorID:         req.CreditorID,
		Comment:            req.Comment,
		RecommendationDate: time.Now(),
	}
	if err := uc.recs.Create(rec); err != nil {
		return nil, err
	}
	return dto.RecommendationToResponse(rec), nil
}

// ListRecommendations devuelve las recomendaciones recibidas por un deudor.
func (uc *FeedbackUseCase) ListRecommendations(debtorID int64) ([]*dto.RecommendationResponse, error) {
	if err := uc.requireUser(debtorID); err != nil {
		return nil, err
	}
	recs, err := uc.recs.ListByDebtor(debtorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationToResponse(r))
	}
	return out, nil
}

// CreateVote registra el voto de un acreedor sobre un deudor.
func (uc *FeedbackUseCase) CreateVote(req dto.CreateVoteRequest) (*dto.VoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := uc.requireUser(req.DebtorID); err != nil {
		return nil, err
	}
	if err := uc.requireUser(req.CreditorID); err != nil {
		return nil, err
	}
	vote := &entity.Vote{
		DebtorID:   req.DebtorID,
		CreditorID: req.CreditorID,
		Approve:    req.Approve,
		Comment:    req.Comment,
		VoteDate:   time.Now(),
	}
	if err := uc.votes.Create(vote); err != nil {
		return nil, err
	}
	return dto.VoteToResponse(vote), nil
}

// ListVotes devuelve los votos recibidos por un deudor.
func (uc *FeedbackUseCase) ListVotes(debtorID int64) ([]*dto.VoteResponse, error) {
	if err := uc.requireUser(debtorID); err != nil {
		return nil, err
	}
	votes, err := uc.votes.ListByDebtor(debtorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, dto.VoteToResponse(v))
	}
	return out, nil
}
