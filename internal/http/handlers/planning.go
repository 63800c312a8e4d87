package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/export"
	"homecare-scheduler/internal/logx"
)

// PlanningHandler serves read-only scheduling views.
type PlanningHandler struct {
	uc            planningUsecase
	professionals professionalUsecase
	logger        logx.Logger
}

// NewPlanningHandler creates a PlanningHandler. professionals is used for spreadsheet titles.
func NewPlanningHandler(logger logx.Logger, uc planningUsecase, professionals professionalUsecase) *PlanningHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PlanningHandler{uc: uc, professionals: professionals, logger: logger}
}

// Slot handles GET /professionals/{id}/slot?date=.
func (h *PlanningHandler) Slot(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	s, err := h.uc.AvailableSlot(r.Context(), id, date)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, slotToResponse(s))
}

// Candidates handles GET /patients/{id}/candidates?date=.
func (h *PlanningHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	list, err := h.uc.Candidates(r.Context(), id, date)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, candidatesToResponse(list))
}

// Route handles GET /professionals/{id}/route?date=[&start_lat=&start_lng=].
func (h *PlanningHandler) Route(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	start, ok := startFromQuery(r)
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid start")
		return
	}
	route, err := h.uc.Route(r.Context(), id, date, start)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, routeToResponse(route))
}

// Schedule handles GET /professionals/{id}/schedule?date=[&format=xlsx].
func (h *PlanningHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "xlsx" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid format")
		return
	}

	entries, err := h.uc.DaySchedule(r.Context(), id, date)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if format != "xlsx" {
		writeJSON(h.logger, w, r, http.StatusOK, scheduleToResponse(entries))
		return
	}

	prof, err := h.professionals.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteDaySchedule(&buf, *prof, date, entries); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition",
		`attachment; filename="schedule-`+domain.FormatDate(date)+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Debug("schedule export write failed", logx.Any("err", err))
	}
}

// startFromQuery reads an optional start coordinate; both parts or neither.
func startFromQuery(r *http.Request) (*domain.Coordinate, bool) {
	q := r.URL.Query()
	latS, lngS := q.Get("start_lat"), q.Get("start_lng")
	if latS == "" && lngS == "" {
		return nil, true
	}
	lat, err1 := strconv.ParseFloat(latS, 64)
	lng, err2 := strconv.ParseFloat(lngS, 64)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	return &domain.Coordinate{Lat: lat, Lng: lng}, true
}
