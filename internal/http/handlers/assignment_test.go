package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/http/handlers"
	"homecare-scheduler/internal/http/middleware/auth"
	"homecare-scheduler/internal/logx"
)

func asCoordinator(r *http.Request) *http.Request {
	return r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{Subject: "coord-7", Roles: []string{auth.RoleCoordinator}}))
}

func TestAssignmentHandler_Assign_Success(t *testing.T) {
	t.Parallel()

	patient, prof := uuid.New(), uuid.New()
	uc := &stubAssignments{
		oneFn: func(_ context.Context, req domain.AssignRequest, by string) domain.AssignOutcome {
			require.Equal(t, "coord-7", by)
			require.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), req.Date)
			a := domain.Assignment{
				ID: uuid.New(), PatientID: req.PatientID, ProfessionalID: req.ProfessionalID,
				Date: req.Date, StartTime: domain.MustClock("10:00"), Status: domain.StatusActive, AssignedBy: by,
			}
			sl := domain.Slot{Available: true, SuggestedTime: a.StartTime, PatientCountOnDay: 1, MaxCapacity: 4}
			return domain.AssignOutcome{Request: req, Success: true, Assignment: &a, SuggestedTime: "10:00", Slot: &sl}
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)

	body := `{"patient_id":"` + patient.String() + `","professional_id":"` + prof.String() + `","date":"2025-03-03"}`
	rr := httptest.NewRecorder()
	h.Assign(rr, asCoordinator(httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp struct {
		Success       bool   `json:"success"`
		SuggestedTime string `json:"suggested_time"`
		Assignment    struct {
			StartTime  string `json:"start_time"`
			AssignedBy string `json:"assigned_by"`
		} `json:"assignment"`
		Slot struct {
			PatientCountOnDay int `json:"patient_count_on_day"`
		} `json:"slot"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.True(t, resp.Success)
	require.Equal(t, "10:00", resp.SuggestedTime)
	require.Equal(t, "coord-7", resp.Assignment.AssignedBy)
	require.Equal(t, 1, resp.Slot.PatientCountOnDay)
}

func TestAssignmentHandler_Assign_Failures(t *testing.T) {
	t.Parallel()

	full := domain.Slot{Reason: "daily capacity reached (4/4 patients)", PatientCountOnDay: 4, MaxCapacity: 4}
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "capacity", err: &domain.SlotUnavailableError{Slot: full}, wantCode: http.StatusConflict, wantMsg: full.Reason},
		{name: "not found", err: apperr.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "not found"},
		{name: "store", err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantMsg: "internal error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uc := &stubAssignments{
				oneFn: func(_ context.Context, req domain.AssignRequest, _ string) domain.AssignOutcome {
					return domain.AssignOutcome{Request: req, Err: tt.err}
				},
			}
			h := handlers.NewAssignmentHandler(logx.Nop(), uc)
			body := `{"patient_id":"` + uuid.NewString() + `","professional_id":"` + uuid.NewString() + `","date":"2025-03-03"}`
			rr := httptest.NewRecorder()
			h.Assign(rr, httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body)))

			require.Equal(t, tt.wantCode, rr.Code)
			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			require.Equal(t, false, resp["success"])
			require.Equal(t, tt.wantMsg, resp["error"])
		})
	}
}

func TestAssignmentHandler_Assign_ValidatesBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewAssignmentHandler(logx.Nop(), &stubAssignments{})
	for _, body := range []string{
		`{"patient_id":"nope","professional_id":"` + uuid.NewString() + `","date":"2025-03-03"}`,
		`{"patient_id":"` + uuid.NewString() + `","professional_id":"` + uuid.NewString() + `","date":"03.03.2025"}`,
		`{"patient_id":"` + uuid.NewString() + `"}`,
	} {
		rr := httptest.NewRecorder()
		h.Assign(rr, httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body)))
		require.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestAssignmentHandler_AssignBulk(t *testing.T) {
	t.Parallel()

	uc := &stubAssignments{
		bulkFn: func(_ context.Context, reqs []domain.AssignRequest, by string) domain.BulkResult {
			require.Len(t, reqs, 2)
			res := domain.BulkResult{Total: 2, Successful: 1, Failed: 1}
			a := domain.Assignment{ID: uuid.New(), Date: reqs[0].Date, StartTime: domain.MustClock("08:00")}
			res.Results = []domain.AssignOutcome{
				{Request: reqs[0], Success: true, Assignment: &a, SuggestedTime: "08:00"},
				{Request: reqs[1], Err: &domain.SlotUnavailableError{Slot: domain.Slot{Reason: domain.ReasonNoWorkingHours}}},
			}
			return res
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)

	item := func() string {
		return `{"patient_id":"` + uuid.NewString() + `","professional_id":"` + uuid.NewString() + `","date":"2025-03-08"}`
	}
	rr := httptest.NewRecorder()
	h.AssignBulk(rr, httptest.NewRequest(http.MethodPost, "/assignments/bulk",
		strings.NewReader(`{"items":[`+item()+`,`+item()+`]}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Total      int `json:"total"`
		Successful int `json:"successful"`
		Failed     int `json:"failed"`
		Results    []struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 2, resp.Total)
	require.Equal(t, 1, resp.Failed)
	require.Equal(t, domain.ReasonNoWorkingHours, resp.Results[1].Error)

	rr = httptest.NewRecorder()
	h.AssignBulk(rr, httptest.NewRequest(http.MethodPost, "/assignments/bulk", strings.NewReader(`{"items":[]}`)))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssignmentHandler_AssignBulk_MalformedItemFailsAlone(t *testing.T) {
	t.Parallel()

	patient, prof := uuid.New(), uuid.New()
	var got []domain.AssignRequest
	uc := &stubAssignments{
		bulkFn: func(_ context.Context, reqs []domain.AssignRequest, _ string) domain.BulkResult {
			got = reqs
			a := domain.Assignment{ID: uuid.New(), PatientID: reqs[0].PatientID, ProfessionalID: reqs[0].ProfessionalID,
				Date: reqs[0].Date, StartTime: domain.MustClock("08:00"), Status: domain.StatusActive}
			return domain.BulkResult{
				Total:      1,
				Successful: 1,
				Results:    []domain.AssignOutcome{{Request: reqs[0], Success: true, Assignment: &a, SuggestedTime: "08:00"}},
			}
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)

	body := `{"items":[` +
		`{"patient_id":"` + uuid.NewString() + `","professional_id":"` + prof.String() + `","date":"not-a-date"},` +
		`{"patient_id":"` + patient.String() + `","professional_id":"` + prof.String() + `","date":"2025-03-03"}]}`
	rr := httptest.NewRecorder()
	h.AssignBulk(rr, asCoordinator(httptest.NewRequest(http.MethodPost, "/assignments/bulk", strings.NewReader(body))))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, got, 1)
	require.Equal(t, patient, got[0].PatientID)

	var resp struct {
		Total      int `json:"total"`
		Successful int `json:"successful"`
		Failed     int `json:"failed"`
		Results    []struct {
			PatientID     string `json:"patient_id"`
			Date          string `json:"date"`
			Success       bool   `json:"success"`
			SuggestedTime string `json:"suggested_time"`
			Error         string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 2, resp.Total)
	require.Equal(t, 1, resp.Successful)
	require.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)

	require.False(t, resp.Results[0].Success)
	require.Equal(t, "not-a-date", resp.Results[0].Date)
	require.Contains(t, resp.Results[0].Error, "date")
	require.True(t, resp.Results[1].Success)
	require.Equal(t, patient.String(), resp.Results[1].PatientID)
	require.Equal(t, "08:00", resp.Results[1].SuggestedTime)
}

func TestAssignmentHandler_AssignBulk_AllMalformedSkipsUseCase(t *testing.T) {
	t.Parallel()

	uc := &stubAssignments{
		bulkFn: func(context.Context, []domain.AssignRequest, string) domain.BulkResult {
			t.Error("use case must not run without valid items")
			return domain.BulkResult{}
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.AssignBulk(rr, httptest.NewRequest(http.MethodPost, "/assignments/bulk",
		strings.NewReader(`{"items":[{"patient_id":"x","professional_id":"y","date":"2025-03-03"}]}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"total":1,"successful":0,"failed":1,"results":[
		{"patient_id":"x","professional_id":"y","date":"2025-03-03","success":false,
		 "error":"malformed patient_id, professional_id: invalid input"}]}`, rr.Body.String())
}

func TestAssignmentHandler_Reassign(t *testing.T) {
	t.Parallel()

	oldID, target := uuid.New(), uuid.New()
	uc := &stubAssignments{
		reassignFn: func(_ context.Context, id, prof uuid.UUID, reason, by string) (domain.Assignment, error) {
			require.Equal(t, oldID, id)
			require.Equal(t, target, prof)
			require.Equal(t, "sick leave", reason)
			require.Equal(t, "coord-7", by)
			return domain.Assignment{ID: uuid.New(), ProfessionalID: prof, PreviousID: &id, Reason: reason,
				Status: domain.StatusActive, StartTime: domain.MustClock("08:00")}, nil
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)

	body := `{"professional_id":"` + target.String() + `","reason":"sick leave"}`
	req := asCoordinator(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	rr := httptest.NewRecorder()
	h.Reassign(rr, withURLParam(req, "id", oldID.String()))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"previous_id":"`+oldID.String()+`"`)
}

func TestAssignmentHandler_CompleteCancel(t *testing.T) {
	t.Parallel()

	uc := &stubAssignments{
		completeFn: func(_ context.Context, id uuid.UUID) (domain.Assignment, error) {
			return domain.Assignment{ID: id, Status: domain.StatusCompleted}, nil
		},
		cancelFn: func(context.Context, uuid.UUID) (domain.Assignment, error) {
			return domain.Assignment{}, apperr.ErrConflict
		},
	}
	h := handlers.NewAssignmentHandler(logx.Nop(), uc)
	id := uuid.NewString()

	rr := httptest.NewRecorder()
	h.Complete(rr, withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"completed"`)

	rr = httptest.NewRecorder()
	h.Cancel(rr, withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id))
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	h.Cancel(rr, withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", "x"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
