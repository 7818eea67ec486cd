package handlers_test

import (
	"net/http"
	"testing"

	"tasting-contest-backend/internal/api/handlers"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/mocks"
	"tasting-contest-backend/internal/service"
	"tasting-contest-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCopyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCopyServiceInterface(ctrl)
	handler := handlers.NewCopyHandler(mockService)

	actor := uuid.New()
	targetID := uuid.New()
	sourceID := uuid.New()

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Actor = actor
	httpSuite.Router.POST("/contests/:id/copy/participants", handler.CopyParticipants)
	httpSuite.Router.POST("/contests/:id/copy/requests", handler.CopyRequests)

	t.Run("Participants", func(t *testing.T) {
		copied := uuid.New()
		skipped := uuid.New()
		mockService.EXPECT().
			CopyParticipants(gomock.Any(), actor, targetID, &service.CopyRequest{SourceID: sourceID, Role: "participant"}).
			Return(&service.CopyReport{
				TargetID: targetID,
				SourceID: sourceID,
				Role:     "participant",
				Copied:   []uuid.UUID{copied},
				Skipped:  []service.SkippedUser{{UserID: skipped, Reason: "already related"}},
			}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/contests/"+targetID.String()+"/copy/participants", map[string]interface{}{
			"source_id": sourceID,
			"role":      "participant",
		})

		var report service.CopyReport
		env := testutils.AssertEnvelope(t, recorder, http.StatusOK, &report)
		assert.Equal(t, "participants copied", env.Message)
		assert.Equal(t, []uuid.UUID{copied}, report.Copied)
		assert.Equal(t, skipped, report.Skipped[0].UserID)
	})

	t.Run("Requests", func(t *testing.T) {
		mockService.EXPECT().
			CopyRequests(gomock.Any(), actor, targetID, &service.CopyRequest{SourceID: sourceID, Role: "admin"}).
			Return(&service.CopyReport{TargetID: targetID, SourceID: sourceID, Role: "admin", Copied: []uuid.UUID{}, Skipped: []service.SkippedUser{}}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/contests/"+targetID.String()+"/copy/requests", map[string]interface{}{
			"source_id": sourceID,
			"role":      "admin",
		})
		testutils.AssertEnvelope(t, recorder, http.StatusOK, nil)
	})

	t.Run("ForbiddenOnSource", func(t *testing.T) {
		mockService.EXPECT().
			CopyParticipants(gomock.Any(), actor, targetID, gomock.Any()).
			Return(nil, apperrors.ErrForbidden).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/contests/"+targetID.String()+"/copy/participants", map[string]interface{}{
			"source_id": sourceID,
			"role":      "participant",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not allowed")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		recorder := httpSuite.MakeRawRequest(http.MethodPost, "/contests/"+targetID.String()+"/copy/requests", `{"source_id": 12}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}
