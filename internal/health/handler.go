package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lawpoint/internal/storage"
	"lawpoint/pkg/platform/httputil"
)

// Handler reports liveness plus the one piece of backend state callers are
// allowed to observe: whether the durable store is active. A false
// dbConnected is the persistence warning the UI surfaces.
type Handler struct {
	conn *storage.Connectivity
}

func New(conn *storage.Connectivity) *Handler {
	return &Handler{conn: conn}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/health", h.handleHealth)
}

type healthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"dbConnected"`
	Timestamp   string `json:"timestamp"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		DBConnected: h.conn.Connected(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
