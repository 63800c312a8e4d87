package assignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/ports/scheduletx"
)

// Reassign moves an active assignment to another professional on the same date.
// The old assignment becomes reassigned and the new one references it; both writes
// happen in one transaction.
func (s *Service) Reassign(ctx context.Context, assignmentID, professionalID uuid.UUID, reason, assignedBy string) (domain.Assignment, error) {
	if assignmentID == uuid.Nil || professionalID == uuid.Nil {
		return domain.Assignment{}, apperr.ErrInvalid
	}
	by, err := validateActor(assignedBy)
	if err != nil {
		return domain.Assignment{}, err
	}
	reason = strings.TrimSpace(reason)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var created domain.Assignment
	err = s.repo.WithTx(ctx, func(tx scheduletx.Repository) error {
		old, err := tx.GetAssignmentForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("assignment %s: %w", assignmentID, apperr.ErrNotFound)
		}
		if old.Status != domain.StatusActive {
			return fmt.Errorf("assignment is %s: %w", old.Status, apperr.ErrConflict)
		}
		if old.ProfessionalID == professionalID {
			return fmt.Errorf("already assigned to this professional: %w", apperr.ErrInvalid)
		}

		prof, err := tx.LockProfessional(ctx, professionalID)
		if err != nil {
			return err
		}
		if prof == nil {
			return fmt.Errorf("professional %s: %w", professionalID, apperr.ErrNotFound)
		}
		patient, err := tx.GetPatient(ctx, old.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return fmt.Errorf("patient %s: %w", old.PatientID, apperr.ErrNotFound)
		}

		sl, visit, err := s.fitSlot(ctx, tx, *patient, prof.ID, old.Date, nil)
		if err != nil {
			return err
		}
		if !sl.Available {
			return &domain.SlotUnavailableError{Slot: sl}
		}

		if err := tx.UpdateAssignmentStatus(ctx, old.ID, domain.StatusReassigned); err != nil {
			return err
		}
		if err := tx.DeleteScheduleEntry(ctx, old.ID); err != nil {
			return err
		}
		previous := old.ID
		created, err = s.create(ctx, tx, *patient, prof.ID, old.Date, sl.SuggestedTime, visit, by, reason, &previous)
		return err
	})
	s.observe("reassign", err)
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("assignment reassigned",
		logx.String("event", "assignment_reassigned"),
		logx.String("previous_id", assignmentID.String()),
		logx.String("assignment_id", created.ID.String()),
		logx.String("professional_id", created.ProfessionalID.String()),
		logx.String("reason", created.Reason),
	)
	return created, nil
}

// Complete marks an active assignment as completed.
func (s *Service) Complete(ctx context.Context, assignmentID uuid.UUID) (domain.Assignment, error) {
	return s.transition(ctx, assignmentID, domain.StatusCompleted)
}

// Cancel marks an active assignment as cancelled and drops its schedule entry.
func (s *Service) Cancel(ctx context.Context, assignmentID uuid.UUID) (domain.Assignment, error) {
	return s.transition(ctx, assignmentID, domain.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, assignmentID uuid.UUID, to domain.AssignmentStatus) (domain.Assignment, error) {
	if assignmentID == uuid.Nil {
		return domain.Assignment{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx scheduletx.Repository) error {
		a, err := tx.GetAssignmentForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.ErrNotFound
		}
		if a.Status != domain.StatusActive {
			return fmt.Errorf("assignment is %s: %w", a.Status, apperr.ErrConflict)
		}

		if err := tx.UpdateAssignmentStatus(ctx, a.ID, to); err != nil {
			return err
		}
		if to == domain.StatusCancelled {
			if err := tx.DeleteScheduleEntry(ctx, a.ID); err != nil {
				return err
			}
		}

		a.Status = to
		result = *a
		return nil
	})
	s.observe(string(to), err)
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("assignment status changed",
		logx.String("event", "assignment_"+string(to)),
		logx.String("assignment_id", result.ID.String()),
	)
	return result, nil
}
