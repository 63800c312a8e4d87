package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/geo"
)

type routePatient struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Zone        string             `json:"zone"`
	Coordinates *domain.Coordinate `json:"coordinates"`
}

type routeLeg struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TravelMinutes int    `json:"travel_minutes"`
}

type routeOutput struct {
	Stops              []routeLeg `json:"stops"`
	TotalTravelMinutes int        `json:"total_travel_minutes"`
}

func routeCmd() *cobra.Command {
	var (
		file               string
		startLat, startLng float64
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Order patients from a JSON file into a visiting route",
		Long: "Reads a JSON array of patients ({id, name, zone, coordinates}) and prints them\n" +
			"in nearest-neighbor visiting order with travel minutes per leg.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var start *domain.Coordinate
			if cmd.Flags().Changed("start-lat") || cmd.Flags().Changed("start-lng") {
				start = &domain.Coordinate{Lat: startLat, Lng: startLng}
			}
			return planRoute(in, cmd.OutOrStdout(), geo.NewDefaultCalculator(), start)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "patients JSON file, - for stdin")
	cmd.Flags().Float64Var(&startLat, "start-lat", domain.CityCenter.Lat, "route start latitude")
	cmd.Flags().Float64Var(&startLng, "start-lng", domain.CityCenter.Lng, "route start longitude")
	return cmd
}

func planRoute(in io.Reader, out io.Writer, calc *geo.Calculator, start *domain.Coordinate) error {
	if start != nil && !start.InServiceArea() {
		return errors.New("start is outside the service area")
	}

	var raw []routePatient
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return fmt.Errorf("decode patients: %w", err)
	}
	patients := make([]domain.Patient, 0, len(raw))
	names := make(map[uuid.UUID]string, len(raw))
	for i, p := range raw {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return fmt.Errorf("patient %d: invalid id %q", i, p.ID)
		}
		coords := p.Coordinates
		if coords != nil && !coords.InServiceArea() {
			coords = nil
		}
		patients = append(patients, domain.Patient{ID: id, Name: p.Name, Zone: domain.Zone(p.Zone), Coordinates: coords})
		names[id] = p.Name
	}

	origin := calc.Start()
	if start != nil {
		origin = *start
	}
	var at domain.Location = domain.Pinned{Coord: origin}

	res := routeOutput{Stops: make([]routeLeg, 0, len(patients))}
	for _, p := range calc.OptimizeRoute(patients, start) {
		mins := calc.TravelTimeBetween(at, p.Location())
		res.Stops = append(res.Stops, routeLeg{ID: p.ID.String(), Name: names[p.ID], TravelMinutes: mins})
		res.TotalTravelMinutes += mins
		at = p.Location()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
