package teaserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/steepworks/steeper/pkg/types"
)

// TeaHandler serves the api/teas surface in both shapes over any
// DataService carrying tea varieties.
type TeaHandler struct {
	svc types.DataService[*types.TeaVariety]
}

// NewTeaHandler creates a handler over the given data service.
func NewTeaHandler(svc types.DataService[*types.TeaVariety]) *TeaHandler {
	return &TeaHandler{svc: svc}
}

// errorResponse is the JSON error body for the typed routes.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// statusFor maps a backend error to an HTTP status.
func statusFor(err error) int {
	var argErr *types.ArgumentError
	var storErr *types.StorageError
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrLastVariety):
		return http.StatusConflict
	case errors.Is(err, types.ErrEmptyName),
		errors.Is(err, types.ErrSteepTimeOutOfRange),
		errors.Is(err, types.ErrSteepTimeParse):
		return http.StatusBadRequest
	case errors.As(err, &argErr):
		return http.StatusBadRequest
	case errors.As(err, &storErr) && storErr.Code == 19: // constraint violation
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Typed routes: bare entity bodies, failures as HTTP statuses.

// ListTeas handles GET /api/teas.
func (h *TeaHandler) ListTeas(w http.ResponseWriter, r *http.Request) {
	teas, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if teas == nil {
		teas = []*types.TeaVariety{}
	}
	writeJSON(w, http.StatusOK, teas)
}

// GetTea handles GET /api/teas/{id}.
func (h *TeaHandler) GetTea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "identifier must be a number")
		return
	}
	tea, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tea)
}

// CreateTea handles POST /api/teas.
func (h *TeaHandler) CreateTea(w http.ResponseWriter, r *http.Request) {
	var tea types.TeaVariety
	if err := json.NewDecoder(r.Body).Decode(&tea); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a valid tea variety")
		return
	}
	created, err := h.svc.Add(r.Context(), &tea)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTea handles PUT /api/teas/{id}.
func (h *TeaHandler) UpdateTea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "identifier must be a number")
		return
	}
	var tea types.TeaVariety
	if err := json.NewDecoder(r.Body).Decode(&tea); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a valid tea variety")
		return
	}
	tea.ID = id
	updated, err := h.svc.Update(r.Context(), &tea)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTea handles DELETE /api/teas/{id}.
func (h *TeaHandler) DeleteTea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "identifier must be a number")
		return
	}
	tea, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if _, err := h.svc.Delete(r.Context(), tea); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Enveloped routes: every answer is a 200 envelope; failures are
// reported through the Success flag and Message.

func derefTeas(teas []*types.TeaVariety) []types.TeaVariety {
	out := make([]types.TeaVariety, len(teas))
	for i, t := range teas {
		out[i] = *t
	}
	return out
}

// ListTeasEnveloped handles GET /envelope/api/teas.
func (h *TeaHandler) ListTeasEnveloped(w http.ResponseWriter, r *http.Request) {
	teas, err := h.svc.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, types.OKEnvelope(derefTeas(teas)...))
}

// GetTeaEnveloped handles GET /envelope/api/teas/{id}.
func (h *TeaHandler) GetTeaEnveloped(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope("identifier must be a number"))
		return
	}
	tea, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, types.OKEnvelope(*tea))
}

// CreateTeaEnveloped handles POST /envelope/api/teas. Every variety in
// the incoming envelope is added; the reply carries the created rows.
func (h *TeaHandler) CreateTeaEnveloped(w http.ResponseWriter, r *http.Request) {
	var env types.ResultEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope("request body must be a valid envelope"))
		return
	}
	var created []types.TeaVariety
	for i := range env.Teas {
		tea, err := h.svc.Add(r.Context(), &env.Teas[i])
		if err != nil {
			writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
			return
		}
		created = append(created, *tea)
	}
	writeJSON(w, http.StatusOK, types.OKEnvelope(created...))
}

// UpdateTeaEnveloped handles PUT /envelope/api/teas, the enveloped
// variant's full-collection update path.
func (h *TeaHandler) UpdateTeaEnveloped(w http.ResponseWriter, r *http.Request) {
	var env types.ResultEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope("request body must be a valid envelope"))
		return
	}
	var updated []types.TeaVariety
	for i := range env.Teas {
		tea, err := h.svc.Update(r.Context(), &env.Teas[i])
		if err != nil {
			writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
			return
		}
		updated = append(updated, *tea)
	}
	writeJSON(w, http.StatusOK, types.OKEnvelope(updated...))
}

// DeleteTeaEnveloped handles DELETE /envelope/api/teas/{id}.
func (h *TeaHandler) DeleteTeaEnveloped(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope("identifier must be a number"))
		return
	}
	tea, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
		return
	}
	if _, err := h.svc.Delete(r.Context(), tea); err != nil {
		writeJSON(w, http.StatusOK, types.FailEnvelope(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, types.OKEnvelope(*tea))
}
