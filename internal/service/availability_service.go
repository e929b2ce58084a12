package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotmatch/internal/entities"
)

type AvailabilityService struct {
	logger *zap.Logger
}

func NewAvailabilityService(logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{logger: logger}
}

// FindBestAvailability ranks the request's employees and logs a summary of the outcome.
func (s *AvailabilityService) FindBestAvailability(req entities.MatchRequest) (*entities.MatchResult, error) {
	start := time.Now()

	result, err := Match(req)
	if err != nil {
		s.logger.Warn("Failed to match availability",
			zap.String("booking_time", req.BookingTime),
			zap.Int("employees", len(req.Employees)),
			zap.Error(err))
		return nil, fmt.Errorf("match availability: %w", err)
	}

	fields := []zap.Field{
		zap.String("requested_date", result.RequestedDate),
		zap.String("requested_time", result.RequestedTime),
		zap.Int("employees", result.TotalEmployees),
		zap.Int("employees_with_availability", result.EmployeesWithAvailability),
		zap.Duration("elapsed", time.Since(start)),
	}
	if result.TargetEmployee != nil {
		fields = append(fields, zap.Bool("target_found", result.TargetEmployee.Success))
	}
	s.logger.Info("Matched availability", fields...)

	return &result, nil
}
