package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles progress, statistics and export endpoints
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetProgress handles GET /contests/:id/progress/:scope_id
// @Summary Get statement progress
// @Description Per-theme done/total counts for the contest scope or one division
// @Tags reports
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param scope_id path string true "Scope ID: the contest or a division (UUID)"
// @Success 200 {object} Response{data=service.ProgressResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/progress/{scope_id} [get]
func (h *ReportHandler) GetProgress(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	scopeID, ok := pathID(c, "scope_id")
	if !ok {
		return
	}

	progress, err := h.reportService.GetProgress(c.Request.Context(), actor, contestID, scopeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", progress)
}

// GetTeamStats handles GET /contests/:id/divisions/:division_id/stats
// @Summary Get division statistics
// @Tags reports
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Param division_id path string true "Division ID (UUID)"
// @Success 200 {object} Response{data=service.TeamStatsResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/divisions/{division_id}/stats [get]
func (h *ReportHandler) GetTeamStats(c *gin.Context) {
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

	stats, err := h.reportService.GetTeamStats(c.Request.Context(), actor, contestID, divisionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", stats)
}

// GetContestStats handles GET /contests/:id/stats
// @Summary Get contest statistics
// @Tags reports
// @Produce json
// @Param id path string true "Contest ID (UUID)"
// @Success 200 {object} Response{data=service.ContestStatsResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/stats [get]
func (h *ReportHandler) GetContestStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	stats, err := h.reportService.GetContestStats(c.Request.Context(), actor, contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", stats)
}

// ExportResults handles GET /contests/:id/export
// @Summary Export contest results
// @Description One row per subject and statement. format=csv returns a CSV attachment.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param id path string true "Contest ID (UUID)"
// @Param format query string false "Output format" Enums(json, csv)
// @Success 200 {object} Response{data=service.ExportResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contests/{id}/export [get]
func (h *ReportHandler) ExportResults(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		fail(c, http.StatusBadRequest, "invalid format")
		return
	}

	export, err := h.reportService.ExportResults(c.Request.Context(), actor, contestID)
	if err != nil {
		respondError(c, err)
		return
	}

	if format == "json" {
		respond(c, http.StatusOK, "ok", export)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, export.Rows); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "contest-"+contestID.String()+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
