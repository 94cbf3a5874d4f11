package handlers

import (
	"encoding/json"
	"net/http"

	"pika_mood/internal/logger"
	"pika_mood/internal/storage"
)

type PairHandler struct {
	pairs *storage.PairStorage
	log   *logger.Logger
}

func NewPairHandler(pairs *storage.PairStorage, log *logger.Logger) *PairHandler {
	return &PairHandler{
		pairs: pairs,
		log:   log.With("handler", "pair"),
	}
}

// HandleSaveLink stores an owner -> partner link. Both directions need
// their own save; the linking handshake happens outside this service.
func (ph *PairHandler) HandleSaveLink(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/pair.go HandleSaveLink"

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		OwnerID   string `json:"owner_id"`
		PartnerID string `json:"partner_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Couldnt decode json. Wrong request.", http.StatusBadRequest)
		return
	}
	if req.OwnerID == "" || req.PartnerID == "" {
		http.Error(w, "owner_id and partner_id are required.", http.StatusBadRequest)
		return
	}
	if req.OwnerID == req.PartnerID {
		http.Error(w, "Cannot link an owner to themselves.", http.StatusBadRequest)
		return
	}

	if err := ph.pairs.SaveLink(r.Context(), req.OwnerID, req.PartnerID); err != nil {
		ph.log.Error("failed to save pair link", "op", op, "error", err)
		http.Error(w, "Couldnt save pair link.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	response := map[string]string{
		"status": "linked",
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		ph.log.Error("failed to encode response", "op", op, "error", err)
	}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
