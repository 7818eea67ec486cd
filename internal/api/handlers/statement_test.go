package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"tasting-contest-backend/internal/api/handlers"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/mocks"
	"tasting-contest-backend/internal/service"
	"tasting-contest-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatementHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockStatementServiceInterface(ctrl)
	handler := handlers.NewStatementHandler(mockService)

	actor := uuid.New()
	contestID := uuid.New()
	collectionID := uuid.New()
	divisionID := uuid.New()
	subjectID := uuid.New()

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Actor = actor
	httpSuite.Router.POST("/contests/:id/collections/:collection_id/scopes/:scope_id/subjects/:subject_id/statement", handler.SubmitStatement)
	httpSuite.Router.GET("/contests/:id/statements", handler.StatementSummary)

	submitURL := "/contests/" + contestID.String() + "/collections/" + collectionID.String() +
		"/scopes/" + divisionID.String() + "/subjects/" + subjectID.String() + "/statement"

	t.Run("SubmitAddressesFromPath", func(t *testing.T) {
		verdict := "gold"
		mockService.EXPECT().
			Submit(gomock.Any(), actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.SubmitStatementRequest) (*service.StatementResponse, error) {
				assert.Equal(t, contestID, req.ContestID)
				assert.Equal(t, collectionID, req.CollectionID)
				assert.Equal(t, divisionID, req.ScopeID)
				assert.Equal(t, subjectID, req.SubjectID)
				assert.True(t, req.Payload.Flag)
				assert.JSONEq(t, `"gold"`, string(req.Payload.Statement))
				return &service.StatementResponse{
					ContestID: contestID,
					ScopeType: models.ScopeTypeDivision,
					ScopeID:   divisionID,
					SubjectID: subjectID,
					Flag:      true,
					Statement: &verdict,
				}, nil
			}).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodPost, submitURL, map[string]interface{}{
			"flag":      true,
			"statement": "gold",
		})

		var statement service.StatementResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &statement)
		assert.Equal(t, models.ScopeTypeDivision, statement.ScopeType)
		require.NotNil(t, statement.Statement)
		assert.Equal(t, "gold", *statement.Statement)
	})

	t.Run("SubmitByForeignLeader", func(t *testing.T) {
		mockService.EXPECT().
			Submit(gomock.Any(), actor, gomock.Any()).
			Return(nil, apperrors.ErrNotDivisionLeader).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodPost, submitURL, map[string]interface{}{"flag": false})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not a leader of this division")
	})

	t.Run("SubmitInvalidScope", func(t *testing.T) {
		url := "/contests/" + contestID.String() + "/collections/" + collectionID.String() +
			"/scopes/table-1/subjects/" + subjectID.String() + "/statement"
		recorder := httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid scope_id")
	})

	t.Run("Summary", func(t *testing.T) {
		mockService.EXPECT().
			Summary(gomock.Any(), actor, contestID, &divisionID).
			Return(&service.StatementListResponse{Statements: []service.StatementResponse{{ScopeID: divisionID}}, Total: 1}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/contests/"+contestID.String()+"/statements?scope_id="+divisionID.String(), nil)

		var list service.StatementListResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &list)
		assert.Equal(t, 1, list.Total)
	})

	t.Run("SummaryInvalidScope", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/contests/"+contestID.String()+"/statements?scope_id=x", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid scope_id")
	})
}
