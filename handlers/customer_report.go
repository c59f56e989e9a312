package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"payment-reports-api/database"
	"payment-reports-api/models"
	"payment-reports-api/services/report"
	"payment-reports-api/utils"
)

// ReportStore persists generated reports by id.
// Implemented by *database.Connection.
type ReportStore interface {
	LoadReport(ctx context.Context, id string) ([]byte, error)
	SaveReport(ctx context.Context, id string, report []byte) (string, error)
}

// CustomerReportHandler builds reports like ReportHandler but keeps them
// under a customer id for later retrieval, replacing any prior report.
type CustomerReportHandler struct {
	builder *report.Builder
	store   ReportStore
}

func NewCustomerReportHandler(b *report.Builder, store ReportStore) (*CustomerReportHandler, error) {
	if b == nil {
		return nil, fmt.Errorf("report builder is required")
	}
	if store == nil {
		return nil, fmt.Errorf("report store is required")
	}
	return &CustomerReportHandler{builder: b, store: store}, nil
}

func (h *CustomerReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	entries, errs := h.builder.Generate(r.Context(), req)
	if len(errs) > 0 {
		// Validation failures never touch the store.
		log.Printf("[RequestID: %s] Customer report rejected with %d invalid items", requestID, len(errs))
		utils.SendJSONResponse(w, http.StatusBadRequest, errs)
		return
	}

	blob, err := json.Marshal(entries)
	if err != nil {
		log.Printf("[RequestID: %s] Failed to serialize report: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var customerID string
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	id, err := h.store.SaveReport(r.Context(), customerID, blob)
	if err != nil {
		log.Printf("[RequestID: %s] Failed to save report: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save report")
		return
	}

	log.Printf("[RequestID: %s] Saved customer report %s (%d payments)", requestID, id, len(entries))
	utils.SendJSONResponse(w, http.StatusCreated, map[string]string{"customer_id": id})
}

func (h *CustomerReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]

	blob, err := h.store.LoadReport(r.Context(), customerID)
	if errors.Is(err, database.ErrReportNotFound) {
		utils.SendJSONResponse(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		log.Printf("Failed to load report %s: %v", customerID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The stored blob is returned verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}
