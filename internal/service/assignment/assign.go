package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/ports/scheduletx"
	"homecare-scheduler/internal/service/slot"
)

// AvailableSlot returns the next free slot of a professional on date.
func (s *Service) AvailableSlot(ctx context.Context, professionalID uuid.UUID, date time.Time) (domain.Slot, error) {
	if err := validateDay(professionalID, date); err != nil {
		return domain.Slot{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.ensureProfessional(ctx, professionalID); err != nil {
		return domain.Slot{}, err
	}
	return s.slots.Available(ctx, s.repo, professionalID, domain.DateOf(date), nil)
}

// AssignOne assigns one patient to one professional. Failures are reported in the outcome.
func (s *Service) AssignOne(ctx context.Context, req domain.AssignRequest, assignedBy string) domain.AssignOutcome {
	out := s.assign(ctx, req, assignedBy, nil)
	s.observe("assign", out.Err)
	return out
}

// AssignBulk runs AssignOne for every request in order. Assignments made earlier in
// the batch count against capacity for later requests. A failed item does not stop the batch.
func (s *Service) AssignBulk(ctx context.Context, reqs []domain.AssignRequest, assignedBy string) domain.BulkResult {
	res := domain.BulkResult{
		Total:   len(reqs),
		Results: make([]domain.AssignOutcome, 0, len(reqs)),
	}
	batch := slot.NewBatchLoad()

	for _, req := range reqs {
		out := s.assign(ctx, req, assignedBy, batch)
		s.observe("assign_bulk", out.Err)
		if out.Success {
			res.Successful++
			batch.Record(req.ProfessionalID, domain.DateOf(req.Date))
		} else {
			res.Failed++
		}
		res.Results = append(res.Results, out)
	}

	s.logger.Info("bulk assignment finished",
		logx.String("event", "assignment_bulk"),
		logx.Int("total", res.Total),
		logx.Int("successful", res.Successful),
		logx.Int("failed", res.Failed),
	)
	return res
}

func (s *Service) assign(ctx context.Context, req domain.AssignRequest, assignedBy string, batch *slot.BatchLoad) domain.AssignOutcome {
	out := domain.AssignOutcome{Request: req}
	if err := validateRequest(req); err != nil {
		out.Err = err
		return out
	}
	by, err := validateActor(assignedBy)
	if err != nil {
		out.Err = err
		return out
	}
	date := domain.DateOf(req.Date)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		created domain.Assignment
		sl      domain.Slot
		ranSlot bool
	)
	err = s.repo.WithTx(ctx, func(tx scheduletx.Repository) error {
		patient, err := tx.GetPatient(ctx, req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return fmt.Errorf("patient %s: %w", req.PatientID, apperr.ErrNotFound)
		}
		prof, err := tx.LockProfessional(ctx, req.ProfessionalID)
		if err != nil {
			return err
		}
		if prof == nil {
			return fmt.Errorf("professional %s: %w", req.ProfessionalID, apperr.ErrNotFound)
		}

		var visit time.Duration
		sl, visit, err = s.fitSlot(ctx, tx, *patient, prof.ID, date, batch)
		if err != nil {
			return err
		}
		ranSlot = true
		if !sl.Available {
			return &domain.SlotUnavailableError{Slot: sl}
		}

		created, err = s.create(ctx, tx, *patient, prof.ID, date, sl.SuggestedTime, visit, by, "", nil)
		return err
	})
	if ranSlot {
		out.Slot = &sl
	}
	if err != nil {
		out.Err = err
		s.logRejected(req, err)
		return out
	}

	out.Success = true
	out.Assignment = &created
	out.SuggestedTime = created.StartTime.String()

	s.logger.Info("assignment created",
		logx.String("event", "assignment_created"),
		logx.String("assignment_id", created.ID.String()),
		logx.String("patient_id", created.PatientID.String()),
		logx.String("professional_id", created.ProfessionalID.String()),
		logx.String("date", domain.FormatDate(created.Date)),
		logx.String("start", out.SuggestedTime),
	)
	return out
}

// fitSlot computes the slot and rejects it when the patient's visit would run past working hours.
func (s *Service) fitSlot(ctx context.Context, tx slot.Reader, patient domain.Patient, professionalID uuid.UUID, date time.Time, batch *slot.BatchLoad) (domain.Slot, time.Duration, error) {
	sl, err := s.slots.Available(ctx, tx, professionalID, date, batch)
	if err != nil || !sl.Available {
		return sl, 0, err
	}
	visit := s.durations.Duration(patient.CareNeeded, patient.EstimatedDuration)
	return fitVisit(sl, visit), visit, nil
}

func fitVisit(sl domain.Slot, visit time.Duration) domain.Slot {
	if sl.Available && sl.SuggestedTime.Add(visit) > sl.WorkingEnd {
		sl.Available = false
		sl.Reason = domain.ReasonVisitTooLong
	}
	return sl
}

// create writes an active assignment and its schedule entry.
func (s *Service) create(ctx context.Context, tx scheduletx.Repository, patient domain.Patient, professionalID uuid.UUID,
	date time.Time, start domain.ClockTime, visit time.Duration, by, reason string, previous *uuid.UUID,
) (domain.Assignment, error) {
	a := domain.Assignment{
		ID:             s.newID(),
		PatientID:      patient.ID,
		ProfessionalID: professionalID,
		Date:           date,
		StartTime:      start,
		Status:         domain.StatusActive,
		AssignedBy:     by,
		Reason:         reason,
		PreviousID:     previous,
		CreatedAt:      s.now(),
	}
	if err := tx.InsertAssignment(ctx, &a, s.slots.Capacity()); err != nil {
		return domain.Assignment{}, err
	}

	e := domain.ScheduleEntry{
		ID:             s.newID(),
		AssignmentID:   a.ID,
		ProfessionalID: professionalID,
		PatientID:      patient.ID,
		Date:           date,
		Start:          start,
		End:            start.Add(visit),
	}
	if err := tx.InsertScheduleEntry(ctx, &e); err != nil {
		return domain.Assignment{}, fmt.Errorf("schedule entry: %w", err)
	}
	return a, nil
}

func (s *Service) logRejected(req domain.AssignRequest, err error) {
	fields := []logx.Field{
		logx.String("event", "assignment_rejected"),
		logx.String("patient_id", req.PatientID.String()),
		logx.String("professional_id", req.ProfessionalID.String()),
		logx.String("result", resultLabel(err)),
		logx.Err(err),
	}
	var unavailable *domain.SlotUnavailableError
	if errors.As(err, &unavailable) {
		fields = append(fields,
			logx.String("reason", unavailable.Slot.Reason),
			logx.Int("count", unavailable.Slot.PatientCountOnDay),
		)
	}
	if resultLabel(err) == "error" {
		s.logger.Error("assignment failed", fields...)
		return
	}
	s.logger.Warn("assignment rejected", fields...)
}
