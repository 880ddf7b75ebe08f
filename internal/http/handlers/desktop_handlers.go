package handlers

import (
	"mime"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/snapshot"
)

// Desktop serves the local variant's snapshot endpoints.
type Desktop struct {
	state *snapshot.State
	files *snapshot.FileStore
}

func NewDesktop(state *snapshot.State, files *snapshot.FileStore) *Desktop {
	return &Desktop{state: state, files: files}
}

type DesktopSummary struct {
	report.Summary
	Cards []report.Card `json:"cards"`
}

// redactResult strips integration credentials before a result leaves the
// process. The file on disk keeps them.
func redactResult(res snapshot.Result) snapshot.Result {
	if res.Data == nil {
		return res
	}
	data := *res.Data
	data.Integrations = make([]models.Integration, len(res.Data.Integrations))
	for i, in := range res.Data.Integrations {
		data.Integrations[i] = in.Redacted()
	}
	res.Data = &data
	return res
}

// keepSecrets restores stored credentials for integrations that come back
// redacted or without them.
func keepSecrets(incoming, current []models.Integration) {
	stored := make(map[string]models.Integration, len(current))
	for _, in := range current {
		stored[in.ID] = in
	}
	for i, in := range incoming {
		old, ok := stored[in.ID]
		if !ok {
			continue
		}
		if in.APIKey == "" || strings.HasPrefix(in.APIKey, "****") {
			incoming[i].APIKey = old.APIKey
		}
		if in.APISecret == "" {
			incoming[i].APISecret = old.APISecret
		}
	}
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// SummaryHandler godoc
// @Summary Desktop overview computed from the working set
// @Tags desktop
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DesktopSummary
// @Router /api/desktop/summary [get]
func (d *Desktop) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	snap := d.state.Snapshot()
	s := report.Summarize(snap.Customers, snap.Products, snap.Partnerships, snap.Campaigns)
	_ = writeJSON(w, http.StatusOK, DesktopSummary{Summary: s, Cards: report.SummaryCards(s)})
}

// SaveHandler godoc
// @Summary Replace the working set and write it to disk
// @Description Without a body the current working set is written. Redacted credentials keep their stored values.
// @Tags desktop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body snapshot.Snapshot false "Working set"
// @Success 200 {object} snapshot.Result
// @Failure 400 {object} snapshot.Result
// @Failure 415 {object} snapshot.Result
// @Failure 500 {object} snapshot.Result
// @Router /api/desktop/save [post]
func (d *Desktop) SaveHandler(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength != 0 {
		if !isJSON(r) {
			applog.Security(r, "desktop_save", map[string]any{"reason": "content type " + r.Header.Get("Content-Type")})
			_ = writeJSON(w, http.StatusUnsupportedMediaType, snapshot.Result{Error: "body must be application/json"})
			return
		}
		var snap snapshot.Snapshot
		if err := readJSON(w, r, &snap); err != nil {
			_ = writeJSON(w, http.StatusBadRequest, snapshot.Result{Error: err.Error()})
			return
		}
		keepSecrets(snap.Integrations, d.state.Snapshot().Integrations)
		d.state.Replace(snap)
	}

	res := d.files.Save(d.state.Snapshot())
	if !res.Success {
		applog.Error(r, "desktop_save", nil, map[string]any{"error": res.Error})
		_ = writeJSON(w, http.StatusInternalServerError, redactResult(res))
		return
	}
	_ = writeJSON(w, http.StatusOK, redactResult(res))
}

// LoadHandler godoc
// @Summary Read the saved working set from disk
// @Description data is null when nothing has been saved yet. Integration credentials are redacted.
// @Tags desktop
// @Produce json
// @Security BearerAuth
// @Success 200 {object} snapshot.Result
// @Failure 500 {object} snapshot.Result
// @Router /api/desktop/load [get]
func (d *Desktop) LoadHandler(w http.ResponseWriter, r *http.Request) {
	res := d.files.Load()
	if !res.Success {
		_ = writeJSON(w, http.StatusInternalServerError, res)
		return
	}
	if res.Data != nil {
		d.state.Replace(*res.Data)
	}
	_ = writeJSON(w, http.StatusOK, redactResult(res))
}
