package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"neobarber/internal/repository"
)

// RevenuePoint is one day's revenue in the chart series.
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueReport aggregates completed appointments for a tenant.
type RevenueReport struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalAppointments int             `json:"total_appointments"`
	AverageTicket     decimal.Decimal `json:"average_ticket"`
	ChartData         []RevenuePoint  `json:"chart_data"`
}

// AnalyticsService computes revenue analytics.
type AnalyticsService interface {
	Revenue(ctx context.Context, barbershopID uuid.UUID, startDate, endDate string) (*RevenueReport, error)
}

type analyticsService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(appointmentRepo repository.AppointmentRepository) AnalyticsService {
	return &analyticsService{appointmentRepo: appointmentRepo}
}

// Revenue sums completed appointments in the optional inclusive
// [startDate, endDate] range and groups them per date, ascending.
func (s *analyticsService) Revenue(ctx context.Context, barbershopID uuid.UUID, startDate, endDate string) (*RevenueReport, error) {
	appointments, err := s.appointmentRepo.ListCompleted(ctx, barbershopID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byDate := make(map[string]decimal.Decimal)
	for _, apt := range appointments {
		total = total.Add(apt.Price)
		byDate[apt.Date] = byDate[apt.Date].Add(apt.Price)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	chart := make([]RevenuePoint, 0, len(dates))
	for _, date := range dates {
		chart = append(chart, RevenuePoint{Date: date, Revenue: byDate[date]})
	}

	average := decimal.Zero
	if len(appointments) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(appointments))))
	}

	return &RevenueReport{
		TotalRevenue:      total,
		TotalAppointments: len(appointments),
		AverageTicket:     average,
		ChartData:         chart,
	}, nil
}
