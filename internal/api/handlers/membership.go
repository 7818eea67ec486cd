package handlers

import (
	"net/http"

	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles join requests, participants and invitations
type MembershipHandler struct {
	membershipService service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// RequestRole handles POST /contests/:id/requests
// @Summary Request a role on a contest
// @Description File a join request for the authenticated user
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param request body service.RequestRoleRequest true "Requested role"
// @Success 201 {object} Response{data=service.JoinRequestResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/requests [post]
func (h *MembershipHandler) RequestRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.RequestRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.membershipService.RequestRole(c.Request.Context(), actor, contestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "join request created", request)
}

// ListJoinRequests handles GET /contests/:id/requests
// @Summary List pending join requests
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param role query string false "Filter by requested role" Enums(admin, participant)
// @Success 200 {object} Response{data=[]service.JoinRequestResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/requests [get]
func (h *MembershipHandler) ListJoinRequests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var role *models.RequestRole
	if raw := c.Query("role"); raw != "" {
		r := models.RequestRole(raw)
		if !r.IsValid() {
			fail(c, http.StatusBadRequest, "invalid role")
			return
		}
		role = &r
	}

	requests, err := h.membershipService.ListJoinRequests(c.Request.Context(), actor, contestID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", requests)
}

// AcceptJoinRequest handles POST /contests/:id/participants/:user_id/accept
// @Summary Accept a user's join request
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Param request body service.AcceptJoinRequestRequest false "Role to accept"
// @Success 200 {object} Response{data=service.RelationResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/participants/{user_id}/accept [post]
func (h *MembershipHandler) AcceptJoinRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req service.AcceptJoinRequestRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	relation, err := h.membershipService.AcceptJoinRequest(c.Request.Context(), actor, contestID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "join request accepted", relation)
}

// DeclineJoinRequest handles POST /contests/:id/requests/:request_id/decline
// @Summary Decline a join request
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param request_id path string true "Join request ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/requests/{request_id}/decline [post]
func (h *MembershipHandler) DeclineJoinRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	if err := h.membershipService.DeclineJoinRequest(c.Request.Context(), actor, contestID, requestID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "join request declined", nil)
}

// AssignParticipant handles PUT /contests/:id/participants/:user_id/division
// @Summary Place a participant in a division
// @Description A participant belongs to at most one division; previous division memberships are dropped
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Param assignment body service.AssignParticipantRequest true "Division and role"
// @Success 200 {object} Response{data=service.RelationResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/participants/{user_id}/division [put]
func (h *MembershipHandler) AssignParticipant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req service.AssignParticipantRequest
	if !bindJSON(c, &req) {
		return
	}

	relation, err := h.membershipService.AssignParticipant(c.Request.Context(), actor, contestID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "participant assigned", relation)
}

// SetParticipantRole handles PUT /contests/:id/participants/:user_id/role
// @Summary Change a participant's role
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Param role body service.SetParticipantRoleRequest true "Role key"
// @Success 200 {object} Response{data=service.RelationResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/participants/{user_id}/role [put]
func (h *MembershipHandler) SetParticipantRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req service.SetParticipantRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	relation, err := h.membershipService.SetParticipantRole(c.Request.Context(), actor, contestID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "participant role updated", relation)
}

// RemoveParticipant handles DELETE /contests/:id/participants/:user_id
// @Summary Remove a participant
// @Description Drop the user's contest and division relations
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/participants/{user_id} [delete]
func (h *MembershipHandler) RemoveParticipant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.membershipService.RemoveParticipant(c.Request.Context(), actor, contestID, userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "participant removed", nil)
}

// ResetDivisionMembers handles POST /contests/:id/reset-members
// @Summary Clear every division membership of a contest
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response{data=service.ResetReport}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/reset-members [post]
func (h *MembershipHandler) ResetDivisionMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.membershipService.ResetDivisionMembers(c.Request.Context(), actor, contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "division members reset", report)
}

// InviteByRole handles POST /contests/:id/invite
// @Summary Invite users to a contest
// @Description Invitees may be given by id, @handle or email. Unknown refs are reported, not rejected.
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param invite body service.InviteRequest true "Role and invitees"
// @Success 200 {object} Response{data=service.InviteReport}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/invite [post]
func (h *MembershipHandler) InviteByRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.InviteRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.membershipService.InviteByRole(c.Request.Context(), actor, contestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "invitations sent", report)
}

// AcceptInvitation handles POST /contests/:id/invitation/accept
// @Summary Accept an invitation
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/invitation/accept [post]
func (h *MembershipHandler) AcceptInvitation(c *gin.Context) {
	h.respondToInvitation(c, true)
}

// DeclineInvitation handles POST /contests/:id/invitation/decline
// @Summary Decline an invitation
// @Tags membership
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/invitation/decline [post]
func (h *MembershipHandler) DeclineInvitation(c *gin.Context) {
	h.respondToInvitation(c, false)
}

func (h *MembershipHandler) respondToInvitation(c *gin.Context, accept bool) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.membershipService.RespondToInvitation(c.Request.Context(), actor, contestID, accept); err != nil {
		respondError(c, err)
		return
	}
	message := "invitation declined"
	if accept {
		message = "invitation accepted"
	}
	respond(c, http.StatusOK, message, nil)
}
