package handlers

import "time"

type coordinateDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type patientDTO struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Address           string         `json:"address"`
	Zone              string         `json:"zone,omitempty"`
	Coordinates       *coordinateDTO `json:"coordinates"`
	CareNeeded        string         `json:"care_needed"`
	EstimatedDuration *int           `json:"estimated_duration,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

type createPatientRequest struct {
	Name              string         `json:"name" validate:"required,max=200"`
	Address           string         `json:"address" validate:"required,max=500"`
	Zone              string         `json:"zone" validate:"max=100"`
	Coordinates       *coordinateDTO `json:"coordinates"`
	CareNeeded        string         `json:"care_needed" validate:"required,max=100"`
	EstimatedDuration *int           `json:"estimated_duration" validate:"omitempty,gt=0,lte=720"`
}

type updateAddressRequest struct {
	Address     string         `json:"address" validate:"required,max=500"`
	Zone        string         `json:"zone" validate:"max=100"`
	Coordinates *coordinateDTO `json:"coordinates"`
}

type workingHoursDTO struct {
	Weekday int    `json:"weekday" validate:"min=1,max=7"`
	Start   string `json:"start" validate:"required"`
	End     string `json:"end" validate:"required"`
}

type professionalDTO struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Specializations []string          `json:"specializations"`
	WorkingHours    []workingHoursDTO `json:"working_hours"`
	CreatedAt       time.Time         `json:"created_at"`
}

type createProfessionalRequest struct {
	Name            string            `json:"name" validate:"required,max=200"`
	Specializations []string          `json:"specializations" validate:"max=50,dive,required,max=100"`
	WorkingHours    []workingHoursDTO `json:"working_hours" validate:"max=7,dive"`
}

type replaceHoursRequest struct {
	WorkingHours []workingHoursDTO `json:"working_hours" validate:"max=7,dive"`
}

type assignRequest struct {
	PatientID      string `json:"patient_id" validate:"required,uuid"`
	ProfessionalID string `json:"professional_id" validate:"required,uuid"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
}

type bulkAssignRequest struct {
	Items []assignRequest `json:"items" validate:"required,min=1,max=200"`
}

type reassignRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required,uuid"`
	Reason         string `json:"reason" validate:"max=500"`
}

type slotDTO struct {
	Available         bool   `json:"available"`
	SuggestedTime     string `json:"suggested_time,omitempty"`
	Reason            string `json:"reason,omitempty"`
	PatientCountOnDay int    `json:"patient_count_on_day"`
	MaxCapacity       int    `json:"max_capacity"`
}

type assignmentDTO struct {
	ID             string  `json:"id"`
	PatientID      string  `json:"patient_id"`
	ProfessionalID string  `json:"professional_id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	Status         string  `json:"status"`
	AssignedBy     string  `json:"assigned_by"`
	Reason         string  `json:"reason,omitempty"`
	PreviousID     *string `json:"previous_id,omitempty"`
}

type outcomeDTO struct {
	PatientID      string         `json:"patient_id"`
	ProfessionalID string         `json:"professional_id"`
	Date           string         `json:"date"`
	Success        bool           `json:"success"`
	Assignment     *assignmentDTO `json:"assignment,omitempty"`
	SuggestedTime  string         `json:"suggested_time,omitempty"`
	Slot           *slotDTO       `json:"slot,omitempty"`
	Error          string         `json:"error,omitempty"`
}

type bulkResultDTO struct {
	Total      int          `json:"total"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Results    []outcomeDTO `json:"results"`
}

type candidateDTO struct {
	Professional  professionalDTO `json:"professional"`
	Slot          slotDTO         `json:"slot"`
	TravelMinutes int             `json:"travel_minutes"`
}

type routeStopDTO struct {
	Patient       patientDTO `json:"patient"`
	TravelMinutes int        `json:"travel_minutes"`
}

type routeDTO struct {
	ProfessionalID     string         `json:"professional_id"`
	Date               string         `json:"date"`
	Stops              []routeStopDTO `json:"stops"`
	TotalTravelMinutes int            `json:"total_travel_minutes"`
}

type scheduleEntryDTO struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	PatientID    string `json:"patient_id"`
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
}
