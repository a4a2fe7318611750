package dashboard

import "context"

// Counter funcs are provided by the registry, wristband and check-in
// services. The aggregator depends on the counts, not the services.
type (
	PatientCounter   func(ctx context.Context) (int, error)
	WristbandCounter func(ctx context.Context) (int, error)
	CheckInCounter   func(ctx context.Context) (int, error)
)

// Stat carries a single dashboard figure, or the reason it is missing.
// One failing source must not blank the whole dashboard.
type Stat struct {
	Value int    `json:"value"`
	Error string `json:"error,omitempty"`
}

type Stats struct {
	TotalPatients    Stat `json:"total_patients"`
	ActiveWristbands Stat `json:"active_wristbands"`
	CheckinsToday    Stat `json:"checkins_today"`
}

type DashboardService struct {
	countPatients   PatientCounter
	countWristbands WristbandCounter
	countCheckins   CheckInCounter
}

func NewDashboardService(patients PatientCounter, wristbands WristbandCounter, checkins CheckInCounter) *DashboardService {
	return &DashboardService{
		countPatients:   patients,
		countWristbands: wristbands,
		countCheckins:   checkins,
	}
}

func (s *DashboardService) Stats(ctx context.Context) Stats {
	return Stats{
		TotalPatients:    collect(ctx, s.countPatients),
		ActiveWristbands: collect(ctx, s.countWristbands),
		CheckinsToday:    collect(ctx, s.countCheckins),
	}
}

func collect(ctx context.Context, count func(context.Context) (int, error)) Stat {
	v, err := count(ctx)
	if err != nil {
		return Stat{Error: err.Error()}
	}
	return Stat{Value: v}
}
