package dto

import "time"

type ServiceSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type AppointmentView struct {
	ID            uint             `json:"id"`
	Reference     string           `json:"reference"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       time.Time        `json:"end_time"`
	TotalDuration int              `json:"total_duration"`
	Status        string           `json:"status"`
	Informed      bool             `json:"informed"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Services      []ServiceSummary `json:"services"`
}
