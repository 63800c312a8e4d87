package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/repository"
	"homecare-scheduler/internal/service/assignment"
)

type slotOutput struct {
	ProfessionalID    string `json:"professional_id"`
	Date              string `json:"date"`
	Available         bool   `json:"available"`
	SuggestedTime     string `json:"suggested_time,omitempty"`
	Reason            string `json:"reason,omitempty"`
	PatientCountOnDay int    `json:"patient_count_on_day"`
	MaxCapacity       int    `json:"max_capacity"`
}

func slotCmd() *cobra.Command {
	var professional, date string

	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Show a professional's next free slot on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(professional)
			if err != nil {
				return fmt.Errorf("invalid --professional: %w", err)
			}
			day, err := domain.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			cfg, pool, logger, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := assignment.NewService(repository.NewScheduleRepo(pool), assignment.Deps{}, cfg.OperationTimeout, logger)
			s, err := svc.AvailableSlot(cmd.Context(), id, day)
			if err != nil {
				return err
			}
			return writeSlot(cmd, id, day, s)
		},
	}
	cmd.Flags().StringVar(&professional, "professional", "", "professional id")
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("professional")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func writeSlot(cmd *cobra.Command, id uuid.UUID, day time.Time, s domain.Slot) error {
	out := slotOutput{
		ProfessionalID:    id.String(),
		Date:              domain.FormatDate(day),
		Available:         s.Available,
		Reason:            s.Reason,
		PatientCountOnDay: s.PatientCountOnDay,
		MaxCapacity:       s.MaxCapacity,
	}
	if s.Available {
		out.SuggestedTime = s.SuggestedTime.String()
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
