package handlers

import (
	"net/http"

	"homecare-scheduler/internal/logx"
)

// ProfessionalHandler serves professional resources.
type ProfessionalHandler struct {
	uc     professionalUsecase
	logger logx.Logger
}

// NewProfessionalHandler creates a ProfessionalHandler.
func NewProfessionalHandler(logger logx.Logger, uc professionalUsecase) *ProfessionalHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ProfessionalHandler{uc: uc, logger: logger}
}

// Create handles POST /professionals.
func (h *ProfessionalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfessionalRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	p, err := req.toModel()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	created, err := h.uc.Create(r.Context(), p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/professionals/"+created.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, professionalToResponse(*created))
}

// GetByID handles GET /professionals/{id}.
func (h *ProfessionalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(h.logger, w, r, http.StatusOK, professionalToResponse(*p))
}

// List handles GET /professionals?limit=&offset=.
func (h *ProfessionalHandler) List(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(h.logger, w, r, http.StatusOK, professionalsToResponse(list))
}

// ReplaceWorkingHours handles PUT /professionals/{id}/working-hours.
func (h *ProfessionalHandler) ReplaceWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req replaceHoursRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	hours, err := hoursToModel(req.WorkingHours)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if err := h.uc.ReplaceWorkingHours(r.Context(), id, hours); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
