package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/rogerio-castellano/ops-dashboard/internal/services"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps err onto a status code. Server side failures are logged
// and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		_ = writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verrs.Error(), Errors: verrs})
	case errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrProductNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, report.ErrUnknownRankField),
		errors.Is(err, report.ErrUnknownReport),
		errors.Is(err, auth.ErrInvalidInput),
		errors.Is(err, auth.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrRefreshTokenInvalid):
		applog.Security(r, action, map[string]any{"reason": err.Error()})
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, report.ErrComputationFailed):
		applog.Error(r, action, err, nil)
		writeMessage(w, http.StatusInternalServerError, "Failed to compute dashboard data")
	default:
		applog.Error(r, action, err, nil)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}
