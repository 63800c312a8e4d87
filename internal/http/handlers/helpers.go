package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/http/middleware/auth"
	"homecare-scheduler/internal/logx"
)

const (
	bodyLimit = 1 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil && logger != nil {
		logger.Warn("json encode failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	if logger != nil {
		logger.Debug("http error",
			logx.String("req_id", reqID(r.Context())),
			logx.Int("status", status),
			logx.String("msg", msg),
		)
	}
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

// writeServiceError maps the error taxonomy onto HTTP statuses.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var unavailable *domain.SlotUnavailableError
	switch {
	case errors.As(err, &unavailable):
		writeError(logger, w, r, http.StatusConflict, unavailable.Slot.Reason)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "conflict")
	case errors.Is(err, apperr.ErrUnavailable):
		writeError(logger, w, r, http.StatusConflict, "no slot available")
	default:
		if logger != nil {
			logger.Error("request failed",
				logx.String("req_id", reqID(r.Context())),
				logx.String("path", r.URL.Path),
				logx.Any("err", err),
			)
		}
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// errorStatus is writeServiceError's status without writing.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a single JSON document into dst and validates its tags.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return "invalid field " + ve[0].Namespace() + ": " + ve[0].Tag()
	}
	return "invalid input"
}

func idFromURL(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

func dateFromQuery(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	return domain.ParseDate(s)
}

func pageFromQuery(r *http.Request) (limit, offset *int, err error) {
	q := r.URL.Query()
	parse := func(key string) (*int, error) {
		s := q.Get(key)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, errors.New("invalid " + key)
		}
		return &v, nil
	}
	if limit, err = parse("limit"); err != nil {
		return nil, nil, err
	}
	if offset, err = parse("offset"); err != nil {
		return nil, nil, err
	}
	return limit, offset, nil
}

func actor(r *http.Request) string {
	if id, ok := auth.FromContext(r.Context()); ok {
		return id.Subject
	}
	return ""
}
