package service

import (
	"context"

	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ContestServiceInterface defines the interface for contest service
type ContestServiceInterface interface {
	CreateContest(ctx context.Context, actor uuid.UUID, req *CreateContestRequest) (*ContestResponse, error)
	GetContest(ctx context.Context, actor, contestID uuid.UUID) (*ContestResponse, error)
	UpdateContest(ctx context.Context, actor, contestID uuid.UUID, req *UpdateContestRequest) (*ContestResponse, error)
	DeleteContest(ctx context.Context, actor, contestID uuid.UUID) error
	AddDivision(ctx context.Context, actor, contestID uuid.UUID, req *CreateDivisionRequest) (*TeamSummary, error)
	RemoveDivision(ctx context.Context, actor, contestID, divisionID uuid.UUID) error
	AddCollection(ctx context.Context, actor, contestID uuid.UUID, req *CreateCollectionRequest) (*CollectionResponse, error)
	RemoveCollection(ctx context.Context, actor, contestID, collectionID uuid.UUID) error
	AssignCollection(ctx context.Context, actor, contestID, collectionID, divisionID uuid.UUID) (*AssignmentResponse, error)
	UnassignCollection(ctx context.Context, actor, contestID, collectionID, divisionID uuid.UUID) error
	GetMyRoles(ctx context.Context, actor, teamID uuid.UUID) (*RolesResponse, error)
	ImportImpressions(ctx context.Context, actor, contestID, collectionID uuid.UUID, req *ImportImpressionsRequest) ([]ImpressionResponse, error)
	AddTasting(ctx context.Context, actor, contestID, collectionID, subjectID uuid.UUID, req *AddTastingRequest) (*ImpressionResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	RequestRole(ctx context.Context, actor, contestID uuid.UUID, req *RequestRoleRequest) (*JoinRequestResponse, error)
	ListJoinRequests(ctx context.Context, actor, contestID uuid.UUID, role *models.RequestRole) ([]JoinRequestResponse, error)
	AcceptJoinRequest(ctx context.Context, actor, contestID, userID uuid.UUID, req *AcceptJoinRequestRequest) (*RelationResponse, error)
	DeclineJoinRequest(ctx context.Context, actor, contestID, requestID uuid.UUID) error
	AssignParticipant(ctx context.Context, actor, contestID, userID uuid.UUID, req *AssignParticipantRequest) (*RelationResponse, error)
	SetParticipantRole(ctx context.Context, actor, contestID, userID uuid.UUID, req *SetParticipantRoleRequest) (*RelationResponse, error)
	RemoveParticipant(ctx context.Context, actor, contestID, userID uuid.UUID) error
	ResetDivisionMembers(ctx context.Context, actor, contestID uuid.UUID) (*ResetReport, error)
	InviteByRole(ctx context.Context, actor, contestID uuid.UUID, req *InviteRequest) (*InviteReport, error)
	RespondToInvitation(ctx context.Context, actor, contestID uuid.UUID, accept bool) error
}

// CopyServiceInterface defines the interface for copy service
type CopyServiceInterface interface {
	CopyParticipants(ctx context.Context, actor, targetID uuid.UUID, req *CopyRequest) (*CopyReport, error)
	CopyRequests(ctx context.Context, actor, targetID uuid.UUID, req *CopyRequest) (*CopyReport, error)
}

// StatementServiceInterface defines the interface for statement service
type StatementServiceInterface interface {
	Submit(ctx context.Context, actor uuid.UUID, req *SubmitStatementRequest) (*StatementResponse, error)
	Summary(ctx context.Context, actor, contestID uuid.UUID, scopeID *uuid.UUID) (*StatementListResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	GetProgress(ctx context.Context, actor, contestID, scopeID uuid.UUID) (*ProgressResponse, error)
	GetTeamStats(ctx context.Context, actor, contestID, divisionID uuid.UUID) (*TeamStatsResponse, error)
	GetContestStats(ctx context.Context, actor, contestID uuid.UUID) (*ContestStatsResponse, error)
	ExportResults(ctx context.Context, actor, contestID uuid.UUID) (*ExportResponse, error)
}

var (
	_ ContestServiceInterface    = (*ContestService)(nil)
	_ MembershipServiceInterface = (*MembershipService)(nil)
	_ CopyServiceInterface       = (*CopyService)(nil)
	_ StatementServiceInterface  = (*StatementService)(nil)
	_ ReportServiceInterface     = (*ReportService)(nil)
)
