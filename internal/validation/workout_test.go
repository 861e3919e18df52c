package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"name":      "Run",
		"duration":  float64(30),
		"type":      "Cardio",
		"intensity": "Medium",
		"calories":  float64(250),
		"date":      "2026-02-01",
		"notes":     "Park route",
		"status":    "done",
	}
}

func TestWorkoutValid(t *testing.T) {
	f, err := Workout(validPayload())
	require.NoError(t, err)
	require.Equal(t, "Run", f.Name)
	require.Equal(t, 30.0, f.Duration)
	require.Equal(t, 250.0, f.Calories)
	require.Equal(t, "2026-02-01", f.Date)
	require.Equal(t, "Park route", f.Notes)
	require.Equal(t, "done", f.Status)
}

func TestWorkoutNumericStringsAndOptionalNotes(t *testing.T) {
	p := validPayload()
	p["duration"] = " 45.5 "
	p["calories"] = "0"
	delete(p, "notes")
	f, err := Workout(p)
	require.NoError(t, err)
	require.Equal(t, 45.5, f.Duration)
	require.Equal(t, 0.0, f.Calories)
	require.Equal(t, "", f.Notes)

	p["notes"] = nil
	f, err = Workout(p)
	require.NoError(t, err)
	require.Equal(t, "", f.Notes)
}

func TestWorkoutRules(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
		msg   string
	}{
		{"missing name", "name", nil, "Invalid name"},
		{"empty name", "name", "", "Invalid name"},
		{"numeric name", "name", float64(3), "Invalid name"},
		{"zero duration", "duration", float64(0), "Invalid duration"},
		{"negative duration", "duration", float64(-5), "Invalid duration"},
		{"text duration", "duration", "abc", "Invalid duration"},
		{"empty duration", "duration", "", "Invalid duration"},
		{"bool duration", "duration", true, "Invalid duration"},
		{"NaN duration", "duration", "NaN", "Invalid duration"},
		{"Inf duration", "duration", "Inf", "Invalid duration"},
		{"infinity duration", "duration", "infinity", "Invalid duration"},
		{"NaN calories", "calories", "NaN", "Invalid calories"},
		{"Inf calories", "calories", "Inf", "Invalid calories"},
		{"empty type", "type", "", "Invalid type"},
		{"missing intensity", "intensity", nil, "Invalid intensity"},
		{"negative calories", "calories", float64(-1), "Invalid calories"},
		{"missing calories", "calories", nil, "Invalid calories"},
		{"impossible date", "date", "2026-02-30", "Invalid date (use YYYY-MM-DD)"},
		{"month 13", "date", "2026-13-01", "Invalid date (use YYYY-MM-DD)"},
		{"short date", "date", "2026-2-1", "Invalid date (use YYYY-MM-DD)"},
		{"slashes", "date", "2026/02/01", "Invalid date (use YYYY-MM-DD)"},
		{"timestamp", "date", "2026-02-01T10:00:00Z", "Invalid date (use YYYY-MM-DD)"},
		{"year zero", "date", "0000-01-01", "Invalid date (use YYYY-MM-DD)"},
		{"numeric notes", "notes", float64(1), "Invalid notes"},
		{"empty status", "status", "", "Invalid status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			if tc.value == nil {
				delete(p, tc.field)
			} else {
				p[tc.field] = tc.value
			}
			_, err := Workout(p)
			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
			require.Equal(t, tc.msg, verr.Message)
		})
	}
}

func TestWorkoutFirstFailureWins(t *testing.T) {
	p := validPayload()
	p["status"] = ""
	p["date"] = "nope"
	p["duration"] = float64(0)
	_, err := Workout(p)
	require.EqualError(t, err, "Invalid duration")

	_, err = Workout(map[string]any{})
	require.EqualError(t, err, "Invalid name")

	_, err = Workout(nil)
	require.EqualError(t, err, "Invalid name")
}

func TestCalendarDate(t *testing.T) {
	valid := func(s string) bool {
		_, ok := calendarDate(s)
		return ok
	}
	require.True(t, valid("2024-02-29"))
	require.False(t, valid("2025-02-29"))
	require.False(t, valid("2026-04-31"))
	require.True(t, valid("2026-12-31"))
	require.True(t, valid("0001-01-01"))
	require.False(t, valid("0000-01-01"))
	require.False(t, valid(""))
}
