package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"slotmatch/internal/entities"
	apperrors "slotmatch/internal/errors"
	"slotmatch/internal/service"
	"slotmatch/internal/utils"
)

type AvailabilityHandler struct {
	Service      *service.AvailabilityService
	logger       *zap.Logger
	maxBodyBytes int64
}

func NewAvailabilityHandler(svc *service.AvailabilityService, logger *zap.Logger, maxBodyBytes int64) *AvailabilityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityHandler{Service: svc, logger: logger, maxBodyBytes: maxBodyBytes}
}

// FindBestAvailability ranks the posted employees against client_booking_time.
func (h *AvailabilityHandler) FindBestAvailability(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With(zap.String("request_id", RequestIDFrom(r.Context())))
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("Panic while matching availability", zap.Any("panic", rec))
			writeError(w, apperrors.ErrInternal(fmt.Sprint(rec)))
		}
	}()

	var body io.Reader = r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	req, httpErr := DecodeMatchRequest(body)
	if httpErr != nil {
		log.Info("Rejected availability request", zap.Int("status", httpErr.Code), zap.String("error", httpErr.Error()))
		writeError(w, httpErr)
		return
	}

	res, err := h.Service.FindBestAvailability(req)
	if err != nil {
		writeError(w, matchError(err))
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Success: true, MatchResult: res})
}

// DecodeMatchRequest reads and validates a request body, reporting failures
// the same way over HTTP and on the command line.
func DecodeMatchRequest(body io.Reader) (entities.MatchRequest, *apperrors.HTTPError) {
	var req MatchRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return entities.MatchRequest{}, apperrors.ErrRequestTooLarge()
		}
		return entities.MatchRequest{}, apperrors.ErrBadRequest("Invalid JSON in request body").WithDetail(err.Error())
	}
	if req.ClientBookingTime == "" {
		return entities.MatchRequest{}, apperrors.ErrBadRequest("client_booking_time is required")
	}
	employees, err := ParseEmployees(req.Employees)
	switch {
	case errors.Is(err, ErrEmployeesRequired):
		return entities.MatchRequest{}, apperrors.ErrBadRequest(ErrEmployeesRequired.Error())
	case errors.Is(err, ErrEmployeesShape):
		return entities.MatchRequest{}, apperrors.ErrBadRequest(ErrEmployeesShape.Error())
	case err != nil:
		return entities.MatchRequest{}, apperrors.ErrBadRequest("Invalid JSON in request body").WithDetail(err.Error())
	}
	return req.ToEntity(employees), nil
}

func matchError(err error) *apperrors.HTTPError {
	if errors.Is(err, utils.ErrNoTimeOfDay) || errors.Is(err, utils.ErrInvalidTimeOfDay) {
		return apperrors.ErrBadRequest("client_booking_time must contain a time of day").WithDetail(err.Error())
	}
	return apperrors.ErrInternal(err.Error())
}

// MethodNotAllowed answers non-POST calls on the matching routes.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperrors.ErrMethodNotAllowed())
}

// Preflight acknowledges OPTIONS requests that reach the router.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, e *apperrors.HTTPError) {
	writeJSON(w, e.Code, ErrorResponse{Error: e.Message, Message: e.Detail})
}
