package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the aggregate report endpoints
type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportUseCase usecase.ReportUseCase, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// Weekly handles the GET /report/weekly endpoint
func (h *ReportHandler) Weekly(c *gin.Context) {
	buckets, err := h.reportUseCase.Weekly(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"report": "weekly"})
		return
	}

	c.JSON(http.StatusOK, dto.NewWeeklyReportResponse(buckets))
}

// Breakdown handles the GET /report/breakdown endpoint
func (h *ReportHandler) Breakdown(c *gin.Context) {
	entries, err := h.reportUseCase.Breakdown(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"report": "breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.NewBreakdownReportResponse(entries))
}
