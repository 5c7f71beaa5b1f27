// Package verifymock is a local stand-in for the external photo verification
// endpoint. It speaks the same multipart request and JSON verdict shape, with
// deliberately dumb decision rules, so the CLI can be exercised end to end
// without network access to the real service.
package verifymock

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/ecotrack-app/ecotrack/internal/logging"
)

const maxFormMemory = 32 << 20

// verdict mirrors the endpoint's response body.
type verdict struct {
	Status         string   `json:"status"`
	Confidence     float64  `json:"confidence"`
	LabelsDetected []string `json:"labels_detected,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

// cannedLabels stands in for real image classification output.
var cannedLabels = []string{"tree", "plant", "soil"}

type Handler struct {
	log logging.Logger
}

func NewHandler(log logging.Logger) *Handler {
	return &Handler{log: log}
}

// NewRouter mounts the verification routes.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/verify-action", h.Health)
	r.Post("/verify-action", h.VerifyAction)
	return r
}

// Health answers reachability probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// VerifyAction accepts the evidence form and returns a verdict. The photo is
// rejected when the file part is missing or empty, or when the form carries a
// "reject" override; anything else verifies with canned labels.
func (h *Handler) VerifyAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.log.Warn(ctx, "unparseable form", "error", err)
		writeVerdict(w, verdict{Status: "error", Reason: "invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.log.Info(ctx, "rejected: no file part")
		writeVerdict(w, verdict{Status: "rejected", Reason: "No environmental elements detected."})
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil || size == 0 {
		h.log.Info(ctx, "rejected: empty file", "size", size)
		writeVerdict(w, verdict{Status: "rejected", Reason: "No environmental elements detected."})
		return
	}

	if reason := r.FormValue("reject"); reason != "" {
		h.log.Info(ctx, "rejected by override", "reason", reason)
		writeVerdict(w, verdict{Status: "rejected", Reason: reason})
		return
	}

	h.log.Info(ctx, "verified",
		"size", size,
		"device_timestamp", r.FormValue("device_timestamp"),
		"latitude", r.FormValue("latitude"),
		"longitude", r.FormValue("longitude"),
	)
	writeVerdict(w, verdict{Status: "verified", Confidence: 0.93, LabelsDetected: cannedLabels})
}

func writeVerdict(w http.ResponseWriter, v verdict) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
