package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/za-dev/roomfinder-service/internal/model"
)

func TestDateJSON(t *testing.T) {
	t.Parallel()

	var req model.BookingRequest
	err := json.Unmarshal([]byte(`{"client_id":1,"start_date":"2026-09-10","end_date":"2026-09-12"}`), &req)
	require.NoError(t, err)
	require.Equal(t, model.NewDate(2026, 9, 10), req.StartDate)
	require.Equal(t, model.NewDate(2026, 9, 12), req.EndDate)
	require.Equal(t, 2, req.StartDate.DaysUntil(req.EndDate))

	out, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"client_id":1,"start_date":"2026-09-10","end_date":"2026-09-12"}`, string(out))

	var bad model.Date
	require.Error(t, json.Unmarshal([]byte(`"10.09.2026"`), &bad))
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	room := model.BookedRoom{
		StartDate: model.NewDate(2026, 9, 10),
		EndDate:   model.NewDate(2026, 9, 15),
	}

	tests := []struct {
		name       string
		start, end model.Date
		want       bool
	}{
		{"identical", model.NewDate(2026, 9, 10), model.NewDate(2026, 9, 15), true},
		{"contained", model.NewDate(2026, 9, 11), model.NewDate(2026, 9, 12), true},
		{"covers", model.NewDate(2026, 9, 1), model.NewDate(2026, 9, 30), true},
		{"touches start", model.NewDate(2026, 9, 8), model.NewDate(2026, 9, 10), true},
		{"touches end", model.NewDate(2026, 9, 15), model.NewDate(2026, 9, 20), true},
		{"before", model.NewDate(2026, 9, 1), model.NewDate(2026, 9, 9), false},
		{"after", model.NewDate(2026, 9, 16), model.NewDate(2026, 9, 20), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, room.Overlaps(tt.start, tt.end))
		})
	}
}

func TestWeekKey(t *testing.T) {
	t.Parallel()

	// Monday and Sunday of the same ISO week
	require.Equal(t,
		model.NewDate(2026, 9, 7).WeekKey(),
		model.NewDate(2026, 9, 13).WeekKey())

	require.NotEqual(t,
		model.NewDate(2026, 9, 13).WeekKey(),
		model.NewDate(2026, 9, 14).WeekKey())

	// week 1 of a year is distinct from week 1 of the next
	require.NotEqual(t,
		model.NewDate(2026, 1, 1).WeekKey(),
		model.NewDate(2027, 1, 7).WeekKey())
}
