package handlers

import (
	"net/http"

	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatementHandler handles statement submission and listing
type StatementHandler struct {
	statementService service.StatementServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementService service.StatementServiceInterface) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// SubmitStatement handles POST /contests/:id/collections/:collection_id/scopes/:scope_id/subjects/:subject_id/statement
// @Summary Submit a statement
// @Description Create or overwrite the statement of a scope on a subject. The scope is the contest itself or one of its divisions.
// @Tags statements
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Param scope_id path string true "Scope ID: the contest or a division (UUID)"
// @Param subject_id path string true "Subject ID (UUID)"
// @Param statement body service.StatementPayload true "Statement fields"
// @Success 200 {object} Response{data=service.StatementResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id}/scopes/{scope_id}/subjects/{subject_id}/statement [post]
func (h *StatementHandler) SubmitStatement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	req := service.SubmitStatementRequest{}
	if req.ContestID, ok = pathID(c, "id"); !ok {
		return
	}
	if req.CollectionID, ok = pathID(c, "collection_id"); !ok {
		return
	}
	if req.ScopeID, ok = pathID(c, "scope_id"); !ok {
		return
	}
	if req.SubjectID, ok = pathID(c, "subject_id"); !ok {
		return
	}
	if !bindJSON(c, &req.Payload) {
		return
	}

	statement, err := h.statementService.Submit(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "statement saved", statement)
}

// StatementSummary handles GET /contests/:id/statements
// @Summary List the statements of a contest
// @Tags statements
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param scope_id query string false "Only statements of this scope (UUID)"
// @Success 200 {object} Response{data=service.StatementListResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/statements [get]
func (h *StatementHandler) StatementSummary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var scopeID *uuid.UUID
	if raw := c.Query("scope_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid scope_id")
			return
		}
		scopeID = &id
	}

	summary, err := h.statementService.Summary(c.Request.Context(), actor, contestID, scopeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", summary)
}
