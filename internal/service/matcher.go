package service

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"slotmatch/internal/entities"
	"slotmatch/internal/utils"
)

const (
	BestSlotLimit   = 3
	GlobalBestLimit = 3
)

// MinuteDistance returns the absolute distance in minutes between two times of
// day. It does not wrap around midnight: 23:59:59 and 00:00:01 are almost a
// full day apart.
func MinuteDistance(a, b utils.TimeOfDay) float64 {
	return math.Abs(a.Minutes() - b.Minutes())
}

// SelectBestSlots ranks slots by closeness to requested and keeps at most
// limit of them. Midnight placeholders and slots that are not HH:MM:SS are
// dropped before ranking.
func SelectBestSlots(slots []string, requested utils.TimeOfDay, limit int) []entities.RankedSlot {
	ranked := make([]entities.RankedSlot, 0, len(slots))
	if limit <= 0 {
		return ranked
	}
	for _, s := range slots {
		if s == utils.Midnight {
			continue
		}
		t, err := utils.ParseTimeOfDay(s)
		if err != nil {
			continue
		}
		ranked = append(ranked, entities.RankedSlot{Time: s, Distance: MinuteDistance(t, requested)})
	}
	slices.SortStableFunc(ranked, func(a, b entities.RankedSlot) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RankEmployee builds the per-employee view for one date.
func RankEmployee(emp entities.Employee, date, requestedTime string, requested utils.TimeOfDay) entities.EmployeeResult {
	slots := emp.SlotsOn(date)
	best := SelectBestSlots(slots, requested, BestSlotLimit)

	times := make([]string, 0, len(best))
	for _, b := range best {
		times = append(times, b.Time)
	}
	return entities.EmployeeResult{
		ID:                  emp.ID,
		Name:                emp.Name,
		Email:               emp.Email,
		Phone:               emp.Phone,
		Description:         emp.Description,
		RequestedTime:       requestedTime,
		BestAvailableTimes:  times,
		TotalAvailableSlots: len(slots),
		HasAvailability:     len(best) > 0,
	}
}

// SortEmployeeResults orders results in place: employees with availability
// first, those ordered by their closest slot. Ties keep input order.
func SortEmployeeResults(results []entities.EmployeeResult, requested utils.TimeOfDay) {
	slices.SortStableFunc(results, func(a, b entities.EmployeeResult) int {
		switch {
		case a.HasAvailability && !b.HasAvailability:
			return -1
		case !a.HasAvailability && b.HasAvailability:
			return 1
		case a.HasAvailability && b.HasAvailability:
			return cmp.Compare(slotDistance(a.BestAvailableTimes[0], requested), slotDistance(b.BestAvailableTimes[0], requested))
		}
		return 0
	})
}

// GlobalBest flattens the best slots of every employee with availability and
// keeps the limit closest ones across all employees.
func GlobalBest(results []entities.EmployeeResult, requested utils.TimeOfDay, limit int) []entities.AvailabilityEntry {
	var all []entities.AvailabilityEntry
	for _, r := range results {
		if !r.HasAvailability {
			continue
		}
		for _, slot := range r.BestAvailableTimes {
			all = append(all, entities.AvailabilityEntry{
				EmployeeID:          r.ID,
				EmployeeName:        r.Name,
				EmployeeEmail:       r.Email,
				EmployeePhone:       r.Phone,
				EmployeeDescription: r.Description,
				AvailabilityTime:    slot,
				TimeDifference:      slotDistance(slot, requested),
			})
		}
	}
	slices.SortStableFunc(all, func(a, b entities.AvailabilityEntry) int {
		return cmp.Compare(a.TimeDifference, b.TimeDifference)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	if all == nil {
		all = []entities.AvailabilityEntry{}
	}
	return all
}

// ResolveTarget looks the selector up in the original employee order. A nil
// selector yields nil; an unknown employee yields an empty, unsuccessful block.
func ResolveTarget(employees []entities.Employee, sel *entities.TargetSelector, date string, requested utils.TimeOfDay) *entities.TargetAvailability {
	if sel == nil {
		return nil
	}
	target := &entities.TargetAvailability{Results: []entities.AvailabilityEntry{}}
	idx := slices.IndexFunc(employees, func(e entities.Employee) bool {
		return (sel.ID != "" && e.ID == sel.ID) || (sel.Name != "" && e.Name == sel.Name)
	})
	if idx < 0 {
		return target
	}
	emp := employees[idx]
	for _, b := range SelectBestSlots(emp.SlotsOn(date), requested, BestSlotLimit) {
		target.Results = append(target.Results, entities.AvailabilityEntry{
			EmployeeID:          emp.ID,
			EmployeeName:        emp.Name,
			EmployeeEmail:       emp.Email,
			EmployeePhone:       emp.Phone,
			EmployeeDescription: emp.Description,
			AvailabilityTime:    b.Time,
			TimeDifference:      b.Distance,
		})
	}
	target.Success = len(target.Results) > 0
	return target
}

// Match runs the full ranking for one request. It keeps no state between calls.
func Match(req entities.MatchRequest) (entities.MatchResult, error) {
	requestedTime, err := utils.ExtractRequestedTime(req.BookingTime)
	if err != nil {
		return entities.MatchResult{}, err
	}
	requested, err := utils.ParseTimeOfDay(requestedTime)
	if err != nil {
		return entities.MatchResult{}, fmt.Errorf("requested time: %w", err)
	}
	date := utils.ExtractRequestedDate(req.BookingTime)

	results := make([]entities.EmployeeResult, 0, len(req.Employees))
	for _, emp := range req.Employees {
		results = append(results, RankEmployee(emp, date, requestedTime, requested))
	}
	SortEmployeeResults(results, requested)

	withAvailability := 0
	for _, r := range results {
		if r.HasAvailability {
			withAvailability++
		}
	}

	return entities.MatchResult{
		RequestedBookingTime:      req.BookingTime,
		RequestedTime:             requestedTime,
		RequestedDate:             date,
		TotalEmployees:            len(req.Employees),
		EmployeesWithAvailability: withAvailability,
		BestAvailability:          GlobalBest(results, requested, GlobalBestLimit),
		TargetEmployee:            ResolveTarget(req.Employees, req.Target, date, requested),
		Results:                   results,
	}, nil
}

func slotDistance(slot string, requested utils.TimeOfDay) float64 {
	t, err := utils.ParseTimeOfDay(slot)
	if err != nil {
		return math.Inf(1)
	}
	return MinuteDistance(t, requested)
}
