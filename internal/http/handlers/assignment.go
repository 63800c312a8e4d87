package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
)

// AssignmentHandler serves assignment creation and lifecycle endpoints.
type AssignmentHandler struct {
	uc     assignmentUsecase
	logger logx.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase) *AssignmentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AssignmentHandler{uc: uc, logger: logger}
}

// Assign handles POST /assignments. The body is the structured outcome in
// every case; the status reflects its error.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in, err := req.toModel()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	out := h.uc.AssignOne(r.Context(), in, actor(r))
	status := http.StatusCreated
	if !out.Success {
		status = errorStatus(out.Err)
	}
	writeJSON(h.logger, w, r, status, outcomeToResponse(out))
}

// AssignBulk handles POST /assignments/bulk. Items are processed in order; the
// response is 200 even when some items fail. A malformed item fails on its own
// and the rest of the batch still runs.
func (h *AssignmentHandler) AssignBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkAssignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	items := make([]domain.AssignRequest, 0, len(req.Items))
	rejected := make(map[int]outcomeDTO)
	for i, it := range req.Items {
		in, err := it.toModel()
		if err != nil {
			rejected[i] = it.rejected(err)
			continue
		}
		items = append(items, in)
	}

	var res domain.BulkResult
	if len(items) > 0 {
		res = h.uc.AssignBulk(r.Context(), items, actor(r))
	}
	writeJSON(h.logger, w, r, http.StatusOK, mergeBulk(len(req.Items), rejected, res))
}

// Reassign handles POST /assignments/{id}/reassign.
func (h *AssignmentHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req reassignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	target, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid professional_id")
		return
	}

	a, err := h.uc.Reassign(r.Context(), id, target, req.Reason, actor(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
}

// Complete handles POST /assignments/{id}/complete.
func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.uc.Complete)
}

// Cancel handles POST /assignments/{id}/cancel.
func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.uc.Cancel)
}

func (h *AssignmentHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (domain.Assignment, error)) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
}
