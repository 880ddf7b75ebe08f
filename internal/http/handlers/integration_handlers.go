package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
)

// GetIntegrationsHandler godoc
// @Summary List integrations
// @Description Credentials are redacted.
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Integration
// @Failure 500 {object} ErrorResponse
// @Router /api/integrations [get]
func (s *Server) GetIntegrationsHandler(w http.ResponseWriter, r *http.Request) {
	integrations, err := s.integrations.List(r.Context())
	if err != nil {
		writeError(w, r, "list_integrations", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, integrations)
}

// GetIntegrationByIDHandler godoc
// @Summary Get integration by ID
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Integration ID"
// @Success 200 {object} models.Integration
// @Failure 404 {object} ErrorResponse
// @Router /api/integrations/{id} [get]
func (s *Server) GetIntegrationByIDHandler(w http.ResponseWriter, r *http.Request) {
	integration, err := s.integrations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "get_integration", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, integration)
}

// CreateIntegrationHandler godoc
// @Summary Connect a sales platform
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param integration body IntegrationRequest true "Integration"
// @Success 201 {object} models.Integration
// @Failure 400 {object} ErrorResponse
// @Router /api/integrations [post]
func (s *Server) CreateIntegrationHandler(w http.ResponseWriter, r *http.Request) {
	var req IntegrationRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := s.integrations.Create(r.Context(), req.model())
	if err != nil {
		writeError(w, r, "create_integration", err)
		return
	}
	applog.Audit(r, "integration_created", map[string]any{"id": created.ID, "platform": created.Platform})
	_ = writeJSON(w, http.StatusCreated, created)
}

// UpdateIntegrationHandler godoc
// @Summary Replace an integration
// @Description Empty or redacted credentials keep the stored values.
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Integration ID"
// @Param integration body IntegrationRequest true "Integration"
// @Success 200 {object} models.Integration
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/integrations/{id} [put]
func (s *Server) UpdateIntegrationHandler(w http.ResponseWriter, r *http.Request) {
	var req IntegrationRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := s.integrations.Update(r.Context(), chi.URLParam(r, "id"), req.model())
	if err != nil {
		writeError(w, r, "update_integration", err)
		return
	}
	applog.Audit(r, "integration_updated", map[string]any{"id": updated.ID})
	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteIntegrationHandler godoc
// @Summary Delete an integration
// @Tags integrations
// @Security BearerAuth
// @Param id path string true "Integration ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/integrations/{id} [delete]
func (s *Server) DeleteIntegrationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.integrations.Delete(r.Context(), id); err != nil {
		writeError(w, r, "delete_integration", err)
		return
	}
	applog.Audit(r, "integration_deleted", map[string]any{"id": id})
	w.WriteHeader(http.StatusNoContent)
}

// SyncIntegrationHandler godoc
// @Summary Run a manual sync
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Integration ID"
// @Success 200 {object} services.SyncResult
// @Failure 400 {object} ErrorResponse "Integration inactive"
// @Failure 404 {object} ErrorResponse
// @Router /api/integrations/{id}/sync [post]
func (s *Server) SyncIntegrationHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.integrations.Sync(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "sync_integration", err)
		return
	}
	applog.Audit(r, "integration_synced", map[string]any{"id": res.Integration.ID, "products": res.ProductsSynced})
	_ = writeJSON(w, http.StatusOK, res)
}
