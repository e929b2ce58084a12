package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"slotmatch/internal/entities"
)

var (
	ErrEmployeesRequired = errors.New("employees is required")
	ErrEmployeesShape    = errors.New("employees must be an object or array")
)

// MatchRequest is the JSON body accepted by the availability endpoints.
type MatchRequest struct {
	ClientBookingTime string          `json:"client_booking_time"`
	Employees         json.RawMessage `json:"employees"`
	TargetEmployee    *TargetEmployee `json:"target_employee"`
}

type TargetEmployee struct {
	ID   *flexString `json:"id"`
	Name *flexString `json:"name"`
}

type EmployeePayload struct {
	ID          *flexString   `json:"id"`
	Name        *flexString   `json:"name"`
	Email       *flexString   `json:"email"`
	Phone       *flexString   `json:"phone"`
	Description *flexString   `json:"description"`
	Data        *EmployeeData `json:"data"`
}

// EmployeeData is the calendar lookup payload; Result maps YYYY-MM-DD to slots.
type EmployeeData struct {
	Result map[string][]string `json:"result"`
}

type EmployeesShape int

const (
	ShapeList EmployeesShape = iota
	ShapeSingle
	ShapeWrapped
)

func (s EmployeesShape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeSingle:
		return "single"
	case ShapeWrapped:
		return "wrapped"
	}
	return "unknown"
}

// EmployeesInput accepts a list of employees, a single employee object, or an
// object wrapping the list under "array".
type EmployeesInput struct {
	Shape EmployeesShape
	Items []EmployeePayload
}

func (in *EmployeesInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrEmployeesShape
	}
	switch data[0] {
	case '[':
		in.Shape = ShapeList
		return json.Unmarshal(data, &in.Items)
	case '{':
		var probe struct {
			Array json.RawMessage `json:"array"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return err
		}
		if arr := bytes.TrimSpace(probe.Array); len(arr) > 0 && arr[0] == '[' {
			in.Shape = ShapeWrapped
			return json.Unmarshal(arr, &in.Items)
		}
		var single EmployeePayload
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		in.Shape = ShapeSingle
		in.Items = []EmployeePayload{single}
		return nil
	}
	return ErrEmployeesShape
}

// ParseEmployees normalizes the raw employees field.
func ParseEmployees(raw json.RawMessage) (EmployeesInput, error) {
	var in EmployeesInput
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return in, ErrEmployeesRequired
	}
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return in, err
	}
	if in.Items == nil {
		in.Items = []EmployeePayload{}
	}
	return in, nil
}

func (p EmployeePayload) toEntity() entities.Employee {
	emp := entities.Employee{
		ID:          p.ID.value(),
		Name:        p.Name.value(),
		Email:       p.Email.ptr(),
		Phone:       p.Phone.ptr(),
		Description: p.Description.ptr(),
	}
	if p.Data != nil {
		emp.Availability = p.Data.Result
	}
	return emp
}

// ToEntity converts a validated request into the matcher's input.
func (r MatchRequest) ToEntity(employees EmployeesInput) entities.MatchRequest {
	req := entities.MatchRequest{
		BookingTime: r.ClientBookingTime,
		Employees:   make([]entities.Employee, 0, len(employees.Items)),
	}
	for _, e := range employees.Items {
		req.Employees = append(req.Employees, e.toEntity())
	}
	if r.TargetEmployee != nil {
		req.Target = &entities.TargetSelector{
			ID:   r.TargetEmployee.ID.value(),
			Name: r.TargetEmployee.Name.value(),
		}
	}
	return req
}

// MatchResponse is the success body.
type MatchResponse struct {
	Success bool `json:"success"`
	*entities.MatchResult
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// flexString decodes a JSON string or number into its textual form; upstream
// systems send employee ids and phone numbers either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexString) value() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

func (f *flexString) ptr() *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}
