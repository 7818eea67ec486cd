package handlers

import (
	"context"
	"net/http"

	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CopyHandler handles copying participants and requests between contests
type CopyHandler struct {
	copyService service.CopyServiceInterface
}

// NewCopyHandler creates a new copy handler
func NewCopyHandler(copyService service.CopyServiceInterface) *CopyHandler {
	return &CopyHandler{
		copyService: copyService,
	}
}

// CopyParticipants handles POST /contests/:id/copy/participants
// @Summary Copy participants from another contest
// @Description Users already related to the target contest are skipped
// @Tags copy
// @Accept json
// @Produce json
// @Param id path string true "Target contest ID (UUID)"
// @Param copy body service.CopyRequest true "Source contest and role"
// @Success 200 {object} Response{data=service.CopyReport}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/copy/participants [post]
func (h *CopyHandler) CopyParticipants(c *gin.Context) {
	h.copy(c, h.copyService.CopyParticipants, "participants copied")
}

// CopyRequests handles POST /contests/:id/copy/requests
// @Summary Copy pending join requests from another contest
// @Tags copy
// @Accept json
// @Produce json
// @Param id path string true "Target contest ID (UUID)"
// @Param copy body service.CopyRequest true "Source contest and role"
// @Success 200 {object} Response{data=service.CopyReport}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/copy/requests [post]
func (h *CopyHandler) CopyRequests(c *gin.Context) {
	h.copy(c, h.copyService.CopyRequests, "join requests copied")
}

type copyFunc func(ctx context.Context, actor, targetID uuid.UUID, req *service.CopyRequest) (*service.CopyReport, error)

func (h *CopyHandler) copy(c *gin.Context, run copyFunc, message string) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CopyRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := run(c.Request.Context(), actor, targetID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, message, report)
}
