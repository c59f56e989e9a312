package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"payment-reports-api/models"
	"payment-reports-api/services/report"
	"payment-reports-api/utils"
)

// ReportHandler serves the stateless report endpoint: validate, normalize,
// sort, return. Nothing is persisted.
type ReportHandler struct {
	builder *report.Builder
}

func NewReportHandler(b *report.Builder) (*ReportHandler, error) {
	if b == nil {
		return nil, fmt.Errorf("report builder is required")
	}
	return &ReportHandler{builder: b}, nil
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	entries, errs := h.builder.Generate(r.Context(), req)
	if len(errs) > 0 {
		log.Printf("[RequestID: %s] Report rejected with %d invalid items", requestID, len(errs))
		utils.SendJSONResponse(w, http.StatusBadRequest, errs)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, entries)
}
