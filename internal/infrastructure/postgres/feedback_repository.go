package postgres

import (
	"context"
	"fmt"

	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
)

var _ repository.RecommendationRepository = (*RecommendationRepo)(nil)
var _ repository.VoteRepository = (*VoteRepo)(nil)

// RecommendationRepo implementación del puerto RecommendationRepository sobre PostgreSQL.
type RecommendationRepo struct {
	q Querier
}

// NewRecommendationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecommendationRepository(q Querier) *RecommendationRepo {
	return &RecommendationRepo{q: q}
}

// Create persiste una recomendación y asigna el ID generado.
func (r *RecommendationRepo) Create(rec *entity.Recommendation) error {
	query := `
		INSERT INTO recommendations (debtor_id, creditor_id, comment, recommendation_date)
		VALUES ($1, $2, $3, $4)
		RETURNING recommendation_id`
	err := r.q.QueryRow(context.Background(), query,
		rec.DebtorID, rec.CreditorID, nullIfEmpty(rec.Comment), rec.RecommendationDate,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

// ListByDebtor devuelve las recomendaciones recibidas por un deudor.
func (r *RecommendationRepo) ListByDebtor(debtorID int64) ([]*entity.Recommendation, error) {
	query := `
		SELECT recommendation_id, debtor_id, creditor_id, comment, recommendation_date
		FROM recommendations WHERE debtor_id = $1 ORDER BY recommendation_date`
	rows, err := r.q.Query(context.Background(), query, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recommendation
	for rows.Next() {
		var rec entity.Recommendation
		var comment *string
		if err := rows.Scan(&rec.ID, &rec.DebtorID, &rec.CreditorID, &comment, &rec.RecommendationDate); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		rec.Comment = orEmpty(comment)
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// VoteRepo implementación del puerto VoteRepository sobre PostgreSQL.
type VoteRepo struct {
	q Querier
}

// NewVoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVoteRepository(q Querier) *VoteRepo {
	return &VoteRepo{q: q}
}

// Create persiste un voto y asigna el ID generado.
func (r *VoteRepo) Create(vote *entity.Vote) error {
	query := `
		INSERT INTO votes (debtor_id, creditor_id, approve, comment, vote_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING vote_id`
	err := r.q.QueryRow(context.Background(), query,
		vote.DebtorID, vote.CreditorID, vote.Approve, nullIfEmpty(vote.Comment), vote.VoteDate,
	).Scan(&vote.ID)
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los votos recibidos por un deudor.
func (r *VoteRepo) ListByDebtor(debtorID int64) ([]*entity.Vote, error) {
	query := `
		SELECT vote_id, debtor_id, creditor_id, approve, comment, vote_date
		FROM votes WHERE debtor_id = $1 ORDER BY vote_date`
	rows, err := r.q.Query(context.Background(), query, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vote
	for rows.Next() {
		var v entity.Vote
		var comment *string
		if err := rows.Scan(&v.ID, &v.DebtorID, &v.CreditorID, &v.Approve, &comment, &v.VoteDate); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		v.Comment = orEmpty(comment)
		list = append(list, &v)
	}
	return list, rows.Err()
}
