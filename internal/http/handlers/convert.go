package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
)

func (c *coordinateDTO) toModel() *domain.Coordinate {
	if c == nil {
		return nil
	}
	return &domain.Coordinate{Lat: c.Lat, Lng: c.Lng}
}

func coordinateToResponse(c *domain.Coordinate) *coordinateDTO {
	if c == nil {
		return nil
	}
	return &coordinateDTO{Lat: c.Lat, Lng: c.Lng}
}

func (r createPatientRequest) toModel() *domain.Patient {
	return &domain.Patient{
		Name:              r.Name,
		Address:           r.Address,
		Zone:              domain.Zone(r.Zone),
		Coordinates:       r.Coordinates.toModel(),
		CareNeeded:        r.CareNeeded,
		EstimatedDuration: r.EstimatedDuration,
	}
}

func (r updateAddressRequest) toModel(id uuid.UUID) domain.PatientAddressUpdate {
	return domain.PatientAddressUpdate{
		ID:          id,
		Address:     r.Address,
		Zone:        domain.Zone(r.Zone),
		Coordinates: r.Coordinates.toModel(),
	}
}

func patientToResponse(p domain.Patient) patientDTO {
	return patientDTO{
		ID:                p.ID.String(),
		Name:              p.Name,
		Address:           p.Address,
		Zone:              string(p.Zone),
		Coordinates:       coordinateToResponse(p.Coordinates),
		CareNeeded:        p.CareNeeded,
		EstimatedDuration: p.EstimatedDuration,
		CreatedAt:         p.CreatedAt,
	}
}

func patientsToResponse(list []domain.Patient) []patientDTO {
	out := make([]patientDTO, 0, len(list))
	for _, p := range list {
		out = append(out, patientToResponse(p))
	}
	return out
}

func hoursToModel(in []workingHoursDTO) ([]domain.WorkingHours, error) {
	out := make([]domain.WorkingHours, 0, len(in))
	for _, h := range in {
		start, err := domain.ParseClock(h.Start)
		if err != nil {
			return nil, fmt.Errorf("start %q: %w", h.Start, apperr.ErrInvalid)
		}
		end, err := domain.ParseClock(h.End)
		if err != nil {
			return nil, fmt.Errorf("end %q: %w", h.End, apperr.ErrInvalid)
		}
		out = append(out, domain.WorkingHours{Weekday: domain.Weekday(h.Weekday), Start: start, End: end})
	}
	return out, nil
}

func (r createProfessionalRequest) toModel() (*domain.Professional, error) {
	hours, err := hoursToModel(r.WorkingHours)
	if err != nil {
		return nil, err
	}
	return &domain.Professional{Name: r.Name, Specializations: r.Specializations, WorkingHours: hours}, nil
}

func professionalToResponse(p domain.Professional) professionalDTO {
	hours := make([]workingHoursDTO, 0, len(p.WorkingHours))
	for _, h := range p.WorkingHours {
		hours = append(hours, workingHoursDTO{Weekday: int(h.Weekday), Start: h.Start.String(), End: h.End.String()})
	}
	specs := p.Specializations
	if specs == nil {
		specs = []string{}
	}
	return professionalDTO{
		ID:              p.ID.String(),
		Name:            p.Name,
		Specializations: specs,
		WorkingHours:    hours,
		CreatedAt:       p.CreatedAt,
	}
}

func professionalsToResponse(list []domain.Professional) []professionalDTO {
	out := make([]professionalDTO, 0, len(list))
	for _, p := range list {
		out = append(out, professionalToResponse(p))
	}
	return out
}

// toModel reports every malformed field by its JSON name.
func (r assignRequest) toModel() (domain.AssignRequest, error) {
	var bad []string
	pid, err := uuid.Parse(r.PatientID)
	if err != nil {
		bad = append(bad, "patient_id")
	}
	prid, err := uuid.Parse(r.ProfessionalID)
	if err != nil {
		bad = append(bad, "professional_id")
	}
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		bad = append(bad, "date")
	}
	if len(bad) > 0 {
		return domain.AssignRequest{}, fmt.Errorf("malformed %s: %w", strings.Join(bad, ", "), apperr.ErrInvalid)
	}
	return domain.AssignRequest{PatientID: pid, ProfessionalID: prid, Date: date}, nil
}

// rejected is the result entry for an item that never reached the use case.
// It echoes the raw input.
func (r assignRequest) rejected(err error) outcomeDTO {
	return outcomeDTO{
		PatientID:      r.PatientID,
		ProfessionalID: r.ProfessionalID,
		Date:           r.Date,
		Error:          outcomeMessage(err),
	}
}

// mergeBulk puts rejected items back at their input positions between the use case results.
func mergeBulk(total int, rejected map[int]outcomeDTO, res domain.BulkResult) bulkResultDTO {
	out := bulkResultDTO{
		Total:      total,
		Successful: res.Successful,
		Failed:     res.Failed + len(rejected),
		Results:    make([]outcomeDTO, 0, total),
	}
	next := 0
	for i := 0; i < total; i++ {
		if o, ok := rejected[i]; ok {
			out.Results = append(out.Results, o)
			continue
		}
		if next < len(res.Results) {
			out.Results = append(out.Results, outcomeToResponse(res.Results[next]))
			next++
		}
	}
	return out
}

func slotToResponse(s domain.Slot) slotDTO {
	out := slotDTO{
		Available:         s.Available,
		Reason:            s.Reason,
		PatientCountOnDay: s.PatientCountOnDay,
		MaxCapacity:       s.MaxCapacity,
	}
	if s.Available {
		out.SuggestedTime = s.SuggestedTime.String()
	}
	return out
}

func assignmentToResponse(a domain.Assignment) assignmentDTO {
	out := assignmentDTO{
		ID:             a.ID.String(),
		PatientID:      a.PatientID.String(),
		ProfessionalID: a.ProfessionalID.String(),
		Date:           domain.FormatDate(a.Date),
		StartTime:      a.StartTime.String(),
		Status:         string(a.Status),
		AssignedBy:     a.AssignedBy,
		Reason:         a.Reason,
	}
	if a.PreviousID != nil {
		prev := a.PreviousID.String()
		out.PreviousID = &prev
	}
	return out
}

func outcomeToResponse(o domain.AssignOutcome) outcomeDTO {
	out := outcomeDTO{
		PatientID:      o.Request.PatientID.String(),
		ProfessionalID: o.Request.ProfessionalID.String(),
		Date:           domain.FormatDate(o.Request.Date),
		Success:        o.Success,
		SuggestedTime:  o.SuggestedTime,
	}
	if o.Assignment != nil {
		a := assignmentToResponse(*o.Assignment)
		out.Assignment = &a
	}
	if o.Slot != nil {
		s := slotToResponse(*o.Slot)
		out.Slot = &s
	}
	if o.Err != nil {
		out.Error = outcomeMessage(o.Err)
	}
	return out
}

// outcomeMessage hides internal error detail from clients.
func outcomeMessage(err error) string {
	var unavailable *domain.SlotUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return unavailable.Slot.Reason
	case errors.Is(err, apperr.ErrInvalid),
		errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrUnavailable):
		return err.Error()
	default:
		return "internal error"
	}
}

func candidatesToResponse(list []domain.Candidate) []candidateDTO {
	out := make([]candidateDTO, 0, len(list))
	for _, c := range list {
		out = append(out, candidateDTO{
			Professional:  professionalToResponse(c.Professional),
			Slot:          slotToResponse(c.Slot),
			TravelMinutes: c.TravelMinutes,
		})
	}
	return out
}

func routeToResponse(r domain.Route) routeDTO {
	stops := make([]routeStopDTO, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, routeStopDTO{Patient: patientToResponse(s.Patient), TravelMinutes: s.TravelMinutes})
	}
	return routeDTO{
		ProfessionalID:     r.ProfessionalID.String(),
		Date:               domain.FormatDate(r.Date),
		Stops:              stops,
		TotalTravelMinutes: r.TotalTravelMinutes,
	}
}

func scheduleToResponse(entries []domain.ScheduleEntry) []scheduleEntryDTO {
	out := make([]scheduleEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, scheduleEntryDTO{
			ID:           e.ID.String(),
			AssignmentID: e.AssignmentID.String(),
			PatientID:    e.PatientID.String(),
			Date:         domain.FormatDate(e.Date),
			Start:        e.Start.String(),
			End:          e.End.String(),
		})
	}
	return out
}
