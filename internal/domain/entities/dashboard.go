package entities

// DashboardStats summarises the clinic state for the landing page
type DashboardStats struct {
	TotalPatients     int     `json:"totalPatients"`
	TodayAppointments int     `json:"todayAppointments"`
	WeekAppointments  int     `json:"weekAppointments"`
	PendingPayments   int     `json:"pendingPayments"`
	PendingRequests   int     `json:"pendingRequests"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AvailableSlots    int     `json:"availableSlots"`
}

// UpcomingAppointment pairs an appointment with its patient's display name
type UpcomingAppointment struct {
	Appointment
	PatientName string `json:"patientName"`
}

// PaymentTotals sums payment amounts by status
type PaymentTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Overdue float64 `json:"overdue"`
}

// RequestCounts counts appointment requests by status
type RequestCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DaySchedule is one day of the weekly appointment view
type DaySchedule struct {
	Date         string        `json:"date"`
	DayName      string        `json:"dayName"`
	Appointments []Appointment `json:"appointments"`
}
