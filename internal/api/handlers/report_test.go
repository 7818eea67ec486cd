package handlers_test

import (
	"encoding/csv"
	"net/http"
	"strings"
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

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportServiceInterface(ctrl)
	handler := handlers.NewReportHandler(mockService)

	actor := uuid.New()
	contestID := uuid.New()
	divisionID := uuid.New()
	base := "/contests/" + contestID.String()

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Actor = actor
	httpSuite.Router.GET("/contests/:id/progress/:scope_id", handler.GetProgress)
	httpSuite.Router.GET("/contests/:id/divisions/:division_id/stats", handler.GetTeamStats)
	httpSuite.Router.GET("/contests/:id/stats", handler.GetContestStats)
	httpSuite.Router.GET("/contests/:id/export", handler.ExportResults)

	t.Run("Progress", func(t *testing.T) {
		mockService.EXPECT().
			GetProgress(gomock.Any(), actor, contestID, divisionID).
			Return(&service.ProgressResponse{
				ContestID: contestID,
				ScopeType: models.ScopeTypeDivision,
				ScopeID:   divisionID,
				Themes:    []service.ThemeProgress{{Theme: "white", Done: 1, Todo: 2, Total: 3}},
			}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/progress/"+divisionID.String(), nil)

		var progress service.ProgressResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &progress)
		require.Len(t, progress.Themes, 1)
		assert.Equal(t, 2, progress.Themes[0].Todo)
	})

	t.Run("ProgressOfForeignDivision", func(t *testing.T) {
		mockService.EXPECT().
			GetProgress(gomock.Any(), actor, contestID, divisionID).
			Return(nil, apperrors.NewCrossTenantError("division")).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/progress/"+divisionID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "division does not belong")
	})

	t.Run("TeamStats", func(t *testing.T) {
		mockService.EXPECT().
			GetTeamStats(gomock.Any(), actor, contestID, divisionID).
			Return(&service.TeamStatsResponse{ContestID: contestID, DivisionID: divisionID, Leaders: 1, Members: 3}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/divisions/"+divisionID.String()+"/stats", nil)

		var stats service.TeamStatsResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &stats)
		assert.Equal(t, int64(3), stats.Members)
	})

	t.Run("ContestStats", func(t *testing.T) {
		mockService.EXPECT().
			GetContestStats(gomock.Any(), actor, contestID).
			Return(&service.ContestStatsResponse{ContestID: contestID, Divisions: 2, PendingRequests: 1}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/stats", nil)

		var stats service.ContestStatsResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &stats)
		assert.Equal(t, 2, stats.Divisions)
	})

	subjectID := uuid.New()
	export := &service.ExportResponse{
		ContestID: contestID,
		Rows: []service.ExportRow{{
			CollectionName: "White",
			Theme:          "white",
			SubjectID:      subjectID,
			SubjectName:    "Riesling",
			ScopeType:      models.ScopeTypeContest,
			ScopeID:        &contestID,
			Flag:           true,
			Statement:      "gold, with honours",
		}},
	}

	t.Run("ExportJSON", func(t *testing.T) {
		mockService.EXPECT().
			ExportResults(gomock.Any(), actor, contestID).
			Return(export, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/export", nil)

		var got service.ExportResponse
		testutils.AssertEnvelope(t, recorder, http.StatusOK, &got)
		require.Len(t, got.Rows, 1)
		assert.Equal(t, subjectID, got.Rows[0].SubjectID)
	})

	t.Run("ExportCSV", func(t *testing.T) {
		mockService.EXPECT().
			ExportResults(gomock.Any(), actor, contestID).
			Return(export, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/export?format=csv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "contest-"+contestID.String()+".csv")

		records, err := csv.NewReader(strings.NewReader(recorder.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "collection_id", records[0][0])
		assert.Contains(t, records[1], "gold, with honours")
		assert.Contains(t, records[1], subjectID.String())
	})

	t.Run("ExportUnknownFormat", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/export?format=xlsx", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid format")
	})

	t.Run("ExportForbidden", func(t *testing.T) {
		mockService.EXPECT().
			ExportResults(gomock.Any(), actor, contestID).
			Return(nil, apperrors.ErrForbidden).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, base+"/export?format=csv", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not allowed")
	})
}
