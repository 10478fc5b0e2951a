package repository_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/za-dev/roomfinder-service/internal/model"
	"github.com/za-dev/roomfinder-service/internal/repository"
)

func TestPercentageFee(t *testing.T) {
	t.Parallel()
	tests := []struct {
		numDays int
		want    float64
	}{
		{-5, 0.0},
		{0, 0.0},
		{1, 0.0},
		{2, 0.0},
		{3, 0.25},
		{4, 0.25},
		{6, 0.25},
		{7, 0.5},
		{8, 0.5},
		{13, 0.5},
		{14, 1.0},
		{15, 1.0},
		{365, 1.0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, repository.PercentageFee(tt.numDays), "numDays=%d", tt.numDays)
	}
}

func TestPrice(t *testing.T) {
	t.Parallel()
	start := model.NewDate(2026, 9, 10)

	// 5 nights: 5 * (5+100)/12 = 43.75
	require.Equal(t, 43.75, repository.Price(start, start.AddDays(5)))
	// 1 night: (1+100)/12
	require.InDelta(t, 101.0/12.0, repository.Price(start, start.AddDays(1)), 1e-9)
	// same-day stay prices to zero
	require.Equal(t, 0.0, repository.Price(start, start))
}

func TestRescheduleFee(t *testing.T) {
	t.Parallel()
	today := model.Today()

	room := func(bookedDaysAgo int) model.BookedRoom {
		return model.BookedRoom{
			BookingID: 1,
			ClientID:  1,
			StartDate: today.AddDays(5),
			EndDate:   today.AddDays(6),
			BookedOn:  today.AddDays(-bookedDaysAgo),
			Price:     15.0,
		}
	}

	require.Equal(t, 0.0, repository.RescheduleFee(room(1)))
	require.Equal(t, 3.75, repository.RescheduleFee(room(4)))
	require.Equal(t, 7.5, repository.RescheduleFee(room(8)))
	require.Equal(t, 15.0, repository.RescheduleFee(room(15)))
}

func TestRefundAmount(t *testing.T) {
	t.Parallel()
	today := model.Today()

	room := func(startInDays int, price float64) model.BookedRoom {
		return model.BookedRoom{
			BookingID: 1,
			ClientID:  1,
			StartDate: today.AddDays(startInDays),
			EndDate:   today.AddDays(startInDays + 1),
			BookedOn:  today,
			Price:     price,
		}
	}

	require.Equal(t, 0.0, repository.RefundAmount(room(2, 8.42)))
	require.Equal(t, math.Round(0.25*8.42*100)/100, repository.RefundAmount(room(4, 8.42)))
	require.Equal(t, math.Round(0.5*8.42*100)/100, repository.RefundAmount(room(8, 8.42)))
	require.Equal(t, 8.42, repository.RefundAmount(room(15, 8.42)))
}
