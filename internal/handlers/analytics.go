package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pika_mood/internal/logger"
	"pika_mood/internal/storage"
	"pika_mood/internal/usecases"
)

type AnalyticsHandler struct {
	reports *usecases.ReportService
	pairs   *storage.PairStorage
	log     *logger.Logger
}

func NewAnalyticsHandler(reports *usecases.ReportService, pairs *storage.PairStorage, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		reports: reports,
		pairs:   pairs,
		log:     log.With("handler", "analytics"),
	}
}

func (ah *AnalyticsHandler) HandleSelfSummary(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analytics.go HandleSelfSummary"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required.", http.StatusBadRequest)
		return
	}

	summary, err := ah.reports.SelfReport(r.Context(), ownerID)
	if err != nil {
		ah.log.Error("failed to build self summary", "op", op, "error", err)
		http.Error(w, "Couldnt load mood data.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status": "success",
		"data":   summary,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		ah.log.Error("failed to encode response", "op", op, "error", err)
	}
}

func (ah *AnalyticsHandler) HandleCoupleReport(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analytics.go HandleCoupleReport"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required.", http.StatusBadRequest)
		return
	}

	partnerID := r.URL.Query().Get("partner_id")
	if partnerID == "" {
		linked, err := ah.pairs.PartnerOf(r.Context(), ownerID)
		if errors.Is(err, storage.ErrNoPartner) {
			http.Error(w, "No partner linked.", http.StatusNotFound)
			return
		}
		if err != nil {
			ah.log.Error("failed to resolve partner", "op", op, "error", err)
			http.Error(w, "Couldnt resolve partner.", http.StatusInternalServerError)
			return
		}
		partnerID = linked
	}

	result, err := ah.reports.CoupleReport(r.Context(), ownerID, partnerID)
	if err != nil {
		ah.log.Error("failed to build couple report", "op", op, "error", err)
		http.Error(w, "Couldnt build couple report.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status": "success",
		"data":   result,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		ah.log.Error("failed to encode response", "op", op, "error", err)
	}
}
