package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"finverse/internal/domain"
	"finverse/internal/export"
	"finverse/internal/filing"
	"finverse/internal/service"
)

// FilingHandler handles SEC filing endpoints.
type FilingHandler struct {
	filingService service.FilingService
	dev           bool
}

// NewFilingHandler creates a new FilingHandler. dev controls whether raw
// error detail is exposed in 5xx responses.
func NewFilingHandler(filingService service.FilingService, dev bool) *FilingHandler {
	return &FilingHandler{filingService: filingService, dev: dev}
}

// Parse handles POST /api/sec-filing
// @Summary Fetch and parse an SEC filing
// @Description Validates the request, runs the external EDGAR parser, and returns the structured and chunked views of the filing
// @Tags filings
// @Accept json
// @Produce json
// @Param request body filing.RawRequest true "Filing request"
// @Success 200 {object} Response{data=domain.ParsedFiling} "Parsed filing"
// @Failure 400 {object} Response "Validation failure"
// @Failure 500 {object} Response "Parser failure, timeout, or malformed output"
// @Router /sec-filing [post]
func (h *FilingHandler) Parse(c *gin.Context) {
	var raw filing.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	parsed, err := h.filingService.Parse(c.Request.Context(), raw)
	if err != nil {
		HandleError(c, err, h.dev)
		return
	}

	RespondOK(c, parsed)
}

// Export handles POST /api/sec-filing/export
// @Summary Export filing chunks
// @Description Converts a previously returned filing payload into a CSV or XLSX download
// @Tags filings
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Param request body domain.ParsedFiling true "Filing payload as returned by the parse endpoint"
// @Success 200 {file} file "Chunk export"
// @Failure 400 {object} Response "Invalid format or body"
// @Router /sec-filing/export [post]
func (h *FilingHandler) Export(c *gin.Context) {
	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportCSV)))

	var payload domain.ParsedFiling
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	meta := payload.Chunked.Metadata
	var buf bytes.Buffer
	var contentType string
	switch format {
	case domain.ExportCSV:
		contentType = "text/csv"
		if err := export.WriteCSV(&buf, &payload); err != nil {
			HandleError(c, err, h.dev)
			return
		}
	case domain.ExportXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		if err := export.WriteXLSX(&buf, &payload); err != nil {
			HandleError(c, err, h.dev)
			return
		}
	default:
		HandleError(c, domain.ErrInvalidExportFormat, h.dev)
		return
	}

	filename := fmt.Sprintf("%s_%s_chunks.%s", meta.Ticker, meta.Form, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func archiveParams(c *gin.Context) filing.RawRequest {
	return filing.RawRequest{
		Ticker:   c.Param("ticker"),
		FormType: c.Param("form"),
		Year:     filing.YearValue(c.Param("year")),
	}
}

// ArchiveURL handles GET /api/sec-filing/archive/:ticker/:form/:year
// @Summary Presigned link to an archived filing
// @Description Returns a time-limited download URL for a previously parsed and archived filing
// @Tags filings
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param form path string true "Form type"
// @Param year path string true "Filing year"
// @Success 200 {object} Response "Presigned URL"
// @Failure 400 {object} Response "Validation failure"
// @Failure 404 {object} Response "Archive not enabled"
// @Router /sec-filing/archive/{ticker}/{form}/{year} [get]
func (h *FilingHandler) ArchiveURL(c *gin.Context) {
	url, err := h.filingService.ArchiveURL(c.Request.Context(), archiveParams(c))
	if err != nil {
		HandleError(c, err, h.dev)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// DeleteArchive handles DELETE /api/sec-filing/archive/:ticker/:form/:year
// @Summary Delete an archived filing
// @Tags filings
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param form path string true "Form type"
// @Param year path string true "Filing year"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} Response "Archive not enabled"
// @Router /sec-filing/archive/{ticker}/{form}/{year} [delete]
func (h *FilingHandler) DeleteArchive(c *gin.Context) {
	if err := h.filingService.DeleteArchive(c.Request.Context(), archiveParams(c)); err != nil {
		HandleError(c, err, h.dev)
		return
	}
	RespondMessage(c, "Archived filing deleted", nil)
}
