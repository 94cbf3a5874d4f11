package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"pika_mood/internal/cache"
	"pika_mood/internal/logger"
	"pika_mood/internal/models"
	"pika_mood/internal/storage"
)

type MoodHandler struct {
	storage   *storage.MoodStorage
	snapshots *cache.SnapshotCache
	log       *logger.Logger
}

func NewMoodHandler(s *storage.MoodStorage, snapshots *cache.SnapshotCache, log *logger.Logger) *MoodHandler {
	return &MoodHandler{
		storage:   s,
		snapshots: snapshots,
		log:       log.With("handler", "mood"),
	}
}

type saveMoodRequest struct {
	OwnerID     string              `json:"owner_id"`
	Date        time.Time           `json:"date"`
	Mood        string              `json:"mood"`
	JournalText *string             `json:"journal_text,omitempty"`
	Weather     *models.WeatherType `json:"weather,omitempty"`
	SocialTag   *models.SocialTag   `json:"social_tag,omitempty"`
	Intensity   *float64            `json:"intensity,omitempty"`
}

// HandleSaveMood upserts one day's mood for an owner. Saving again for
// the same calendar day overwrites the earlier record.
func (mh *MoodHandler) HandleSaveMood(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/mood.go HandleSaveMood"

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	var req saveMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mh.log.Warn("bad save mood request", "op", op, "error", err)
		http.Error(w, "Couldnt decode json. Wrong request.", http.StatusBadRequest)
		return
	}

	if req.OwnerID == "" {
		http.Error(w, "owner_id is required.", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	mood, err := models.ParseMoodCategory(req.Mood)
	if err != nil {
		http.Error(w, "Unknown mood category.", http.StatusBadRequest)
		return
	}
	if req.Intensity != nil && (*req.Intensity < 0 || *req.Intensity > 1) {
		http.Error(w, "Intensity must be within [0, 1].", http.StatusBadRequest)
		return
	}

	rec := models.MoodRecord{
		OwnerID:     req.OwnerID,
		Date:        req.Date,
		Mood:        mood,
		JournalText: req.JournalText,
		Weather:     req.Weather,
		SocialTag:   req.SocialTag,
		Intensity:   req.Intensity,
	}

	if err := mh.storage.SaveMood(r.Context(), &rec); err != nil {
		mh.log.Error("failed to save mood", "op", op, "error", err)
		http.Error(w, "Couldnt save mood.", http.StatusInternalServerError)
		return
	}

	if mh.snapshots != nil {
		mh.snapshots.InvalidateOwner(r.Context(), rec.OwnerID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	response := map[string]interface{}{
		"status": "saved",
		"data":   rec,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		mh.log.Error("failed to encode response", "op", op, "error", err)
	}
}

func (mh *MoodHandler) HandleGetMoods(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/mood.go HandleGetMoods"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required.", http.StatusBadRequest)
		return
	}

	records, err := mh.storage.FetchAllMoods(r.Context(), ownerID)
	if err != nil {
		mh.log.Error("failed to fetch moods", "op", op, "error", err)
		http.Error(w, "Couldnt get moods.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status": "success",
		"data":   records,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		mh.log.Error("failed to encode response", "op", op, "error", err)
	}
}
