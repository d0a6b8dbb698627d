package server

import (
	"bytes"
	"net/http"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/dashboard"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/output"
)

// snapshot loads the workbooks for r. On failure it writes the error and
// returns nil; nothing else is rendered.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request, asJSON bool) *models.Snapshot {
	snap, err := h.load(r.Context(), h.opts)
	if err != nil {
		loggerFrom(r.Context(), h.logger).Error("load failed", "error", err)
		if asJSON {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		} else {
			http.Error(w, "Erro ao carregar dados: "+err.Error(), http.StatusInternalServerError)
		}
		return nil
	}
	return snap
}

func filterFrom(r *http.Request) dashboard.Filter {
	return dashboard.Filter{Owners: r.URL.Query()["owner"]}
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w, r, false)
	if snap == nil {
		return
	}

	var buf bytes.Buffer
	if err := output.WritePage(&buf, dashboard.Build(snap, filterFrom(r))); err != nil {
		loggerFrom(r.Context(), h.logger).Error("render failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) ownership(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w, r, true)
	if snap == nil {
		return
	}
	records := snap.Ownership
	if records == nil {
		records = []models.OwnershipRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w, r, true)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.Build(snap, filterFrom(r)))
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
