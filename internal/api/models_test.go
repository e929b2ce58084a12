package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployeesShapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		shape     EmployeesShape
		wantNames []string
	}{
		{
			name:      "list",
			raw:       `[{"id":"1","name":"Ana"},{"id":"2","name":"Bo"}]`,
			shape:     ShapeList,
			wantNames: []string{"Ana", "Bo"},
		},
		{
			name:      "single object",
			raw:       `{"id":"1","name":"Ana","data":{"result":{}}}`,
			shape:     ShapeSingle,
			wantNames: []string{"Ana"},
		},
		{
			name:      "wrapped list",
			raw:       `{"array":[{"id":"1","name":"Ana"},{"id":"2","name":"Bo"}]}`,
			shape:     ShapeWrapped,
			wantNames: []string{"Ana", "Bo"},
		},
		{
			name:      "array key that is not a list",
			raw:       `{"array":"nope","id":"1","name":"Ana"}`,
			shape:     ShapeSingle,
			wantNames: []string{"Ana"},
		},
		{
			name:      "empty list",
			raw:       `[]`,
			shape:     ShapeList,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseEmployees(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.shape, in.Shape)

			got := make([]string, 0, len(in.Items))
			for _, item := range in.Items {
				got = append(got, item.Name.value())
			}
			assert.Equal(t, tt.wantNames, got)
		})
	}
}

func TestParseEmployeesErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "missing", raw: ``, want: ErrEmployeesRequired},
		{name: "null", raw: `null`, want: ErrEmployeesRequired},
		{name: "string", raw: `"Mehmet"`, want: ErrEmployeesShape},
		{name: "number", raw: `42`, want: ErrEmployeesShape},
		{name: "bool", raw: `true`, want: ErrEmployeesShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEmployees(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFlexStringAcceptsNumbers(t *testing.T) {
	in, err := ParseEmployees(json.RawMessage(`[{"id":6,"name":"Mehmet","phone":5551234,"email":null}]`))
	require.NoError(t, err)

	emp := in.Items[0].toEntity()
	assert.Equal(t, "6", emp.ID)
	require.NotNil(t, emp.Phone)
	assert.Equal(t, "5551234", *emp.Phone)
	assert.Nil(t, emp.Email)
	assert.Nil(t, emp.Availability)
}

func TestFlexStringRejectsObjects(t *testing.T) {
	_, err := ParseEmployees(json.RawMessage(`[{"id":{"nested":true}}]`))
	assert.Error(t, err)
}

func TestToEntity(t *testing.T) {
	var req MatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"client_booking_time": "2025-09-10T09:00:00-05:00",
		"employees": {"id": "6", "name": "Mehmet", "description": "Barber",
			"data": {"result": {"2025-09-10": ["09:45:00"]}}},
		"target_employee": {"name": "Mehmet"}
	}`), &req))

	employees, err := ParseEmployees(req.Employees)
	require.NoError(t, err)
	got := req.ToEntity(employees)

	assert.Equal(t, "2025-09-10T09:00:00-05:00", got.BookingTime)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, []string{"09:45:00"}, got.Employees[0].SlotsOn("2025-09-10"))
	require.NotNil(t, got.Employees[0].Description)
	assert.Equal(t, "Barber", *got.Employees[0].Description)
	require.NotNil(t, got.Target)
	assert.Empty(t, got.Target.ID)
	assert.Equal(t, "Mehmet", got.Target.Name)
}
