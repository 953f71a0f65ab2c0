package dto

import "github.com/sharpcuts/barber-booking/internal/models"

type DashboardAppointments struct {
	Total    int               `json:"total"`
	Today    int               `json:"today"`
	Upcoming []AppointmentView `json:"upcoming"`
}

type DashboardLeaves struct {
	Total        int            `json:"total"`
	OnLeaveToday bool           `json:"on_leave_today"`
	AllLeaves    []models.Leave `json:"all_leaves"`
}

type DashboardView struct {
	Appointments     DashboardAppointments `json:"appointments"`
	Leaves           DashboardLeaves       `json:"leaves"`
	ServicesTotal    int64                 `json:"services_total"`
	RevenueToday     float64               `json:"revenue_today"`
	RevenueCompleted float64               `json:"revenue_completed"`
}
