package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingDefaults(t *testing.T) {
	db := newTestDB(t)

	booking := createTestBooking(t, db)
	assert.True(t, strings.HasPrefix(booking.BookingNumber, "PA-"))
	assert.Equal(t, "pending", booking.Status)
	assert.NotEmpty(t, booking.Id)
}

func TestListBookingsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	first := createTestBooking(t, db)
	_, err := svc.Create(CreateBookingInput{
		CustomerName:  "Meera Shah",
		Mobile:        "9000000000",
		VehicleType:   "Four Wheeler",
		ServiceType:   "Brake Service",
		PreferredDate: "2026-09-05",
		PreferredTime: "11:00 AM",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.Id, "confirmed")
	require.NoError(t, err)

	byStatus, err := svc.List(BookingFilter{Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, first.Id, byStatus[0].Id)

	byVehicle, err := svc.List(BookingFilter{VehicleType: "Four Wheeler"})
	require.NoError(t, err)
	assert.Len(t, byVehicle, 1)

	// "all" is a no-op filter, not a literal match.
	all, err := svc.List(BookingFilter{Status: "all", VehicleType: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byDate, err := svc.List(BookingFilter{Date: "2026-09-05"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}

func TestBookingStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	first := createTestBooking(t, db)
	createTestBooking(t, db)
	_, err := svc.Create(CreateBookingInput{
		CustomerName:  "Meera Shah",
		Mobile:        "9000000000",
		VehicleType:   "Four Wheeler",
		ServiceType:   "Brake Service",
		PreferredDate: "2026-09-05",
		PreferredTime: "11:00 AM",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.Id, "completed")
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 2, stats.Pending)
	assert.EqualValues(t, 0, stats.Confirmed)
	assert.EqualValues(t, 1, stats.Completed)
	assert.EqualValues(t, 2, stats.TwoWheeler)
	assert.EqualValues(t, 1, stats.FourWheeler)
}

func TestDeleteBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	booking := createTestBooking(t, db)
	require.NoError(t, svc.Delete(booking.Id))

	_, err := svc.Get(booking.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(booking.Id), ErrNotFound)
}
