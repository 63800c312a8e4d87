package assignment

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
)

// allProfessionals pages through the store until a short page.
func (s *Service) allProfessionals(ctx context.Context) ([]domain.Professional, error) {
	var out []domain.Professional
	for offset := 0; ; offset += candidatePageSize {
		page, err := s.repo.ListProfessionals(ctx, candidatePageSize, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < candidatePageSize {
			return out, nil
		}
	}
}

// Candidates lists professionals whose specializations cover the patient's care need,
// with their slot on date and the travel time from their last visit that day.
// Available professionals come first, then lower load, then shorter travel.
func (s *Service) Candidates(ctx context.Context, patientID uuid.UUID, date time.Time) ([]domain.Candidate, error) {
	if patientID == uuid.Nil || date.IsZero() {
		return nil, apperr.ErrInvalid
	}
	day := domain.DateOf(date)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	patient, err := s.repo.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperr.ErrNotFound
	}

	profs, err := s.allProfessionals(ctx)
	if err != nil {
		return nil, err
	}

	visit := s.durations.Duration(patient.CareNeeded, patient.EstimatedDuration)
	wd := domain.WeekdayOf(day)
	out := make([]domain.Candidate, 0, len(profs))
	for _, p := range profs {
		if !s.skills.Matches(patient.CareNeeded, p.Specializations) {
			continue
		}

		hours := p.HoursOn(wd)
		count := 0
		if hours != nil {
			if count, err = s.repo.CountActiveAssignments(ctx, p.ID, day); err != nil {
				return nil, err
			}
		}
		sl := fitVisit(s.slots.Evaluate(hours, count), visit)

		from := domain.Location(domain.Pinned{Coord: s.travel.Start()})
		if count > 0 {
			if from, err = s.lastStop(ctx, p.ID, day, from); err != nil {
				return nil, err
			}
		}

		out = append(out, domain.Candidate{
			Professional:  p,
			Slot:          sl,
			TravelMinutes: s.travel.TravelTimeBetween(from, patient.Location()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Slot.Available != b.Slot.Available {
			return a.Slot.Available
		}
		if a.Slot.PatientCountOnDay != b.Slot.PatientCountOnDay {
			return a.Slot.PatientCountOnDay < b.Slot.PatientCountOnDay
		}
		return a.TravelMinutes < b.TravelMinutes
	})
	return out, nil
}

// lastStop is the location of the latest active visit of the day, or fallback.
func (s *Service) lastStop(ctx context.Context, professionalID uuid.UUID, day time.Time, fallback domain.Location) (domain.Location, error) {
	visits, err := s.repo.ListActiveVisits(ctx, professionalID, day)
	if err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return fallback, nil
	}
	last := visits[0]
	for _, v := range visits[1:] {
		if v.Assignment.StartTime > last.Assignment.StartTime {
			last = v
		}
	}
	return last.Patient.Location(), nil
}

// Route orders the professional's active visits on date nearest-neighbor first,
// starting at start or the city center.
func (s *Service) Route(ctx context.Context, professionalID uuid.UUID, date time.Time, start *domain.Coordinate) (domain.Route, error) {
	if err := validateDay(professionalID, date); err != nil {
		return domain.Route{}, err
	}
	if start != nil && !start.InServiceArea() {
		return domain.Route{}, apperr.ErrInvalid
	}
	day := domain.DateOf(date)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.ensureProfessional(ctx, professionalID); err != nil {
		return domain.Route{}, err
	}
	visits, err := s.repo.ListActiveVisits(ctx, professionalID, day)
	if err != nil {
		return domain.Route{}, err
	}

	patients := make([]domain.Patient, 0, len(visits))
	for _, v := range visits {
		patients = append(patients, v.Patient)
	}
	ordered := s.travel.OptimizeRoute(patients, start)

	origin := s.travel.Start()
	if start != nil {
		origin = *start
	}
	from := domain.Location(domain.Pinned{Coord: origin})

	route := domain.Route{
		ProfessionalID: professionalID,
		Date:           day,
		Stops:          make([]domain.RouteStop, 0, len(ordered)),
	}
	for _, p := range ordered {
		to := p.Location()
		minutes := s.travel.TravelTimeBetween(from, to)
		route.Stops = append(route.Stops, domain.RouteStop{Patient: p, TravelMinutes: minutes})
		route.TotalTravelMinutes += minutes
		from = to
	}
	return route, nil
}

// DaySchedule returns the professional's schedule entries on date ordered by start.
func (s *Service) DaySchedule(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error) {
	if err := validateDay(professionalID, date); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.ensureProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return s.repo.ListScheduleEntries(ctx, professionalID, domain.DateOf(date))
}

func (s *Service) ensureProfessional(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetProfessional(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.ErrNotFound
	}
	return nil
}
