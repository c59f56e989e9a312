package utils

import (
	"encoding/json"
	"net/http"

	"payment-reports-api/models"
)

func SendJSONResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func SendErrorResponse(w http.ResponseWriter, status int, message string) {
	SendJSONResponse(w, status, models.APIResponse{
		Status:  "error",
		Message: message,
	})
}
