package entities

// Employee is one employee's availability as seen by the matcher. Slots are
// keyed by a literal YYYY-MM-DD date and hold HH:MM:SS strings.
type Employee struct {
	ID           string
	Name         string
	Email        *string
	Phone        *string
	Description  *string
	Availability map[string][]string
}

// SlotsOn returns the raw slot list for a date, or nil when the date is absent.
func (e Employee) SlotsOn(date string) []string {
	return e.Availability[date]
}

// TargetSelector names an employee by id, name, or both.
type TargetSelector struct {
	ID   string
	Name string
}

// MatchRequest is the canonical input of the matcher.
type MatchRequest struct {
	BookingTime string
	Employees   []Employee
	Target      *TargetSelector
}

// RankedSlot is a slot paired with its distance in minutes from the requested time.
type RankedSlot struct {
	Time     string
	Distance float64
}
