package handlers

import (
	"net/http"

	"homecare-scheduler/internal/logx"
)

// PatientHandler serves patient resources.
type PatientHandler struct {
	uc     patientUsecase
	logger logx.Logger
}

// NewPatientHandler creates a PatientHandler.
func NewPatientHandler(logger logx.Logger, uc patientUsecase) *PatientHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PatientHandler{uc: uc, logger: logger}
}

// Create handles POST /patients.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPatientRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.uc.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/patients/"+p.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, patientToResponse(*p))
}

// GetByID handles GET /patients/{id}.
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, patientToResponse(*p))
}

// List handles GET /patients?limit=&offset=.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.uc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, patientsToResponse(list))
}

// UpdateAddress handles PUT /patients/{id}/address.
func (h *PatientHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateAddressRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.uc.UpdateAddress(r.Context(), req.toModel(id)); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, patientToResponse(*p))
}
