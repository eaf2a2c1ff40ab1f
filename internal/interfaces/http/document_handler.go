package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/dto"
	"github.com/kraya/platform-api/internal/application/usecase"
)

// DocumentHandler maneja documentos de deudores y el feedback
// (recomendaciones y votos) entre acreedores y deudores.
type DocumentHandler struct {
	docs     *usecase.DocumentUseCase
	feedback *usecase.FeedbackUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(docs *usecase.DocumentUseCase, feedback *usecase.FeedbackUseCase) *DocumentHandler {
	return &DocumentHandler{docs: docs, feedback: feedback}
}

// queryDebtorID lee el query param debtor_id como int64 positivo.
func queryDebtorID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("debtor_id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid debtor_id parameter"})
		return 0, false
	}
	return id, true
}

// CreateDocument POST /api/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.docs.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDocuments GET /api/documents?debtor_id=
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	debtorID, ok := queryDebtorID(c)
	if !ok {
		return nil
	}
	out, err := h.docs.ListByDebtor(debtorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRecommendation POST /api/recommendations
func (h *DocumentHandler) CreateRecommendation(c *fiber.Ctx) error {
	var in dto.CreateRecommendationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.feedback.CreateRecommendation(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecommendations GET /api/recommendations?debtor_id=
func (h *DocumentHandler) ListRecommendations(c *fiber.Ctx) error {
	debtorID, ok := queryDebtorID(c)
	if !ok {
		return nil
	}
	out, err := h.feedback.ListRecommendations(debtorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateVote POST /api/votes
func (h *DocumentHandler) CreateVote(c *fiber.Ctx) error {
	var in dto.CreateVoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.feedback.CreateVote(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVotes GET /api/votes?debtor_id=
func (h *DocumentHandler) ListVotes(c *fiber.Ctx) error {
	debtorID, ok := queryDebtorID(c)
	if !ok {
		return nil
	}
	out, err := h.feedback.ListVotes(debtorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
