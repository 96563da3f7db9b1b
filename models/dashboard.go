package models

// DashboardStats summarizes practice activity for the staff portal landing view.
type DashboardStats struct {
	TodayTotal     int `json:"today_total"`
	TodayCompleted int `json:"today_completed"`
	TodayArrived   int `json:"today_arrived"`
	TodayPending   int `json:"today_pending"`
	WeekTotal      int `json:"week_total"`
	CancelledWeek  int `json:"cancelled_week"`
	NoShowWeek     int `json:"no_show_week"`
}

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	PatientPhone  string `json:"patient_phone,omitempty"`
	PatientEmail  string `json:"patient_email,omitempty"`
	Practitioner  string `json:"practitioner"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
