package handlers

import (
	"net/http"

	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContestHandler handles HTTP requests for contests, divisions and collections
type ContestHandler struct {
	contestService service.ContestServiceInterface
}

// NewContestHandler creates a new contest handler
func NewContestHandler(contestService service.ContestServiceInterface) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

// CreateContest handles POST /contests
// @Summary Create a contest
// @Description Create a contest owned by the authenticated user
// @Tags contests
// @Accept json
// @Produce json
// @Param contest body service.CreateContestRequest true "Contest data"
// @Success 201 {object} Response{data=service.ContestResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests [post]
func (h *ContestHandler) CreateContest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreateContestRequest
	if !bindJSON(c, &req) {
		return
	}

	contest, err := h.contestService.CreateContest(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "contest created", contest)
}

// GetContest handles GET /contests/:id
// @Summary Get a contest
// @Description Get a contest with its divisions, collections and the caller's roles
// @Tags contests
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response{data=service.ContestResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id} [get]
func (h *ContestHandler) GetContest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	contest, err := h.contestService.GetContest(c.Request.Context(), actor, contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", contest)
}

// UpdateContest handles PUT /contests/:id
// @Summary Update a contest
// @Tags contests
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param contest body service.UpdateContestRequest true "Fields to change"
// @Success 200 {object} Response{data=service.ContestResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id} [put]
func (h *ContestHandler) UpdateContest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateContestRequest
	if !bindJSON(c, &req) {
		return
	}

	contest, err := h.contestService.UpdateContest(c.Request.Context(), actor, contestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "contest updated", contest)
}

// DeleteContest handles DELETE /contests/:id
// @Summary Delete a contest
// @Description Soft-delete a contest and its divisions. Owner only.
// @Tags contests
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id} [delete]
func (h *ContestHandler) DeleteContest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.contestService.DeleteContest(c.Request.Context(), actor, contestID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "contest deleted", nil)
}

// GetMyRoles handles GET /contests/:id/roles
// @Summary Get my roles on a team
// @Description Resolve the caller's roles on a contest, division or traditional team
// @Tags contests
// @Produce json
// @Param id path string true "Contest, division or team ID (UUID)"
// @Success 200 {object} Response{data=service.RolesResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/roles [get]
func (h *ContestHandler) GetMyRoles(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	roles, err := h.contestService.GetMyRoles(c.Request.Context(), actor, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", roles)
}

// AddDivision handles POST /contests/:id/divisions
// @Summary Add a division
// @Tags divisions
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param division body service.CreateDivisionRequest true "Division data"
// @Success 201 {object} Response{data=service.TeamSummary}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/divisions [post]
func (h *ContestHandler) AddDivision(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CreateDivisionRequest
	if !bindJSON(c, &req) {
		return
	}

	division, err := h.contestService.AddDivision(c.Request.Context(), actor, contestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "division created", division)
}

// RemoveDivision handles DELETE /contests/:id/divisions/:division_id
// @Summary Remove a division
// @Tags divisions
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param division_id path string true "Division ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/divisions/{division_id} [delete]
func (h *ContestHandler) RemoveDivision(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	divisionID, ok := pathID(c, "division_id")
	if !ok {
		return
	}

	if err := h.contestService.RemoveDivision(c.Request.Context(), actor, contestID, divisionID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "division removed", nil)
}

// AddCollection handles POST /contests/:id/collections
// @Summary Add a collection
// @Description Metadata may be a JSON object or a string of relaxed JSON
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection body service.CreateCollectionRequest true "Collection data"
// @Success 201 {object} Response{data=service.CollectionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections [post]
func (h *ContestHandler) AddCollection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CreateCollectionRequest
	if !bindJSON(c, &req) {
		return
	}

	collection, err := h.contestService.AddCollection(c.Request.Context(), actor, contestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "collection created", collection)
}

// RemoveCollection handles DELETE /contests/:id/collections/:collection_id
// @Summary Remove a collection
// @Tags collections
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id} [delete]
func (h *ContestHandler) RemoveCollection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	collectionID, ok := pathID(c, "collection_id")
	if !ok {
		return
	}

	if err := h.contestService.RemoveCollection(c.Request.Context(), actor, contestID, collectionID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "collection removed", nil)
}

// AssignCollection handles POST /contests/:id/collections/:collection_id/divisions/:division_id
// @Summary Assign a collection to a division
// @Tags collections
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Param division_id path string true "Division ID (UUID)"
// @Success 201 {object} Response{data=service.AssignmentResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id}/divisions/{division_id} [post]
func (h *ContestHandler) AssignCollection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	collectionID, ok := pathID(c, "collection_id")
	if !ok {
		return
	}
	divisionID, ok := pathID(c, "division_id")
	if !ok {
		return
	}

	assignment, err := h.contestService.AssignCollection(c.Request.Context(), actor, contestID, collectionID, divisionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "collection assigned", assignment)
}

// UnassignCollection handles DELETE /contests/:id/collections/:collection_id/divisions/:division_id
// @Summary Unassign a collection from a division
// @Tags collections
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Param division_id path string true "Division ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id}/divisions/{division_id} [delete]
func (h *ContestHandler) UnassignCollection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	collectionID, ok := pathID(c, "collection_id")
	if !ok {
		return
	}
	divisionID, ok := pathID(c, "division_id")
	if !ok {
		return
	}

	if err := h.contestService.UnassignCollection(c.Request.Context(), actor, contestID, collectionID, divisionID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "collection unassigned", nil)
}

// ImportImpressions handles POST /contests/:id/collections/:collection_id/import
// @Summary Import impressions as subjects
// @Description Copy impressions into the collection as molds. Owner only.
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Param impressions body service.ImportImpressionsRequest true "Impression IDs"
// @Success 201 {object} Response{data=[]service.ImpressionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id}/import [post]
func (h *ContestHandler) ImportImpressions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	collectionID, ok := pathID(c, "collection_id")
	if !ok {
		return
	}
	var req service.ImportImpressionsRequest
	if !bindJSON(c, &req) {
		return
	}

	molds, err := h.contestService.ImportImpressions(c.Request.Context(), actor, contestID, collectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "impressions imported", molds)
}

// AddTasting handles POST /contests/:id/collections/:collection_id/subjects/:subject_id/tastings
// @Summary Add a tasting
// @Description Record the caller's tasting of a subject, attributed to their current division
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param collection_id path string true "Collection ID (UUID)"
// @Param subject_id path string true "Subject ID (UUID)"
// @Param tasting body service.AddTastingRequest false "Tasting notes"
// @Success 201 {object} Response{data=service.ImpressionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/collections/{collection_id}/subjects/{subject_id}/tastings [post]
func (h *ContestHandler) AddTasting(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	collectionID, ok := pathID(c, "collection_id")
	if !ok {
		return
	}
	subjectID, ok := pathID(c, "subject_id")
	if !ok {
		return
	}
	var req service.AddTastingRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	tasting, err := h.contestService.AddTasting(c.Request.Context(), actor, contestID, collectionID, subjectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "tasting recorded", tasting)
}
