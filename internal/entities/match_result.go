package entities

type EmployeeResult struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               *string  `json:"email"`
	Phone               *string  `json:"phone"`
	Description         *string  `json:"description"`
	RequestedTime       string   `json:"requested_time"`
	BestAvailableTimes  []string `json:"best_available_times"`
	TotalAvailableSlots int      `json:"total_available_slots"`
	HasAvailability     bool     `json:"has_availability"`
}

// AvailabilityEntry is a single employee slot in a cross-employee listing.
type AvailabilityEntry struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	EmployeeEmail       *string `json:"employee_email"`
	EmployeePhone       *string `json:"employee_phone"`
	EmployeeDescription *string `json:"employee_description"`
	AvailabilityTime    string  `json:"availability_time"`
	TimeDifference      float64 `json:"time_difference_minutes"`
}

type TargetAvailability struct {
	Results []AvailabilityEntry `json:"results"`
	Success bool                `json:"success"`
}

type MatchResult struct {
	RequestedBookingTime      string              `json:"requested_booking_time"`
	RequestedTime             string              `json:"requested_time"`
	RequestedDate             string              `json:"requested_date"`
	TotalEmployees            int                 `json:"total_employees"`
	EmployeesWithAvailability int                 `json:"employees_with_availability"`
	BestAvailability          []AvailabilityEntry `json:"best_availability"`
	TargetEmployee            *TargetAvailability `json:"availability_target_employee"`
	Results                   []EmployeeResult    `json:"results"`
}
