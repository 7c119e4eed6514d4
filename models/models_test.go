package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("guide")
	require.NoError(t, err)
	assert.Equal(t, RoleGuide, r)

	r, err = ParseRole("tourist")
	require.NoError(t, err)
	assert.Equal(t, RoleTourist, r)

	_, err = ParseRole("admin")
	assert.Error(t, err)
	_, err = ParseRole("Guide")
	assert.Error(t, err)
}

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, CheckTransition(BookingRequested, BookingConfirmed))
	assert.NoError(t, CheckTransition(BookingConfirmed, BookingConfirmed))
	assert.Error(t, CheckTransition(BookingConfirmed, BookingRequested))
	assert.Error(t, CheckTransition(BookingRequested, BookingState("rejected")))
}

func TestBookingState(t *testing.T) {
	gb := GuideBooking{GuideID: 5}
	assert.Equal(t, BookingRequested, gb.State())
	assert.Equal(t, uint(5), gb.OwnerID())

	gb.Confirmed = true
	assert.Equal(t, BookingConfirmed, gb.State())

	tb := TourBooking{}
	assert.Equal(t, uint(0), tb.OwnerID())
	tb.Tour = &Tour{GuideID: 7}
	assert.Equal(t, uint(7), tb.OwnerID())
}

func TestBeforeCreateResetsConfirmed(t *testing.T) {
	gb := &GuideBooking{Confirmed: true}
	require.NoError(t, gb.BeforeCreate(nil))
	assert.False(t, gb.Confirmed)

	tb := &TourBooking{Confirmed: true}
	require.NoError(t, tb.BeforeCreate(nil))
	assert.False(t, tb.Confirmed)
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Day Date `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2025-06-01"}`), &payload))
	assert.Equal(t, NewDate(2025, time.June, 1), payload.Day)

	require.NoError(t, json.Unmarshal([]byte(`{"day":"2025-06-01T10:00:00Z"}`), &payload))
	assert.Equal(t, "2025-06-01", payload.Day.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2025-06-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"day":"01/06/2025"}`), &payload))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, NewDate(2025, time.June, 1), d)

	require.NoError(t, d.Scan("2024-02-29"))
	assert.Equal(t, NewDate(2024, time.February, 29), d)

	assert.Error(t, d.Scan(42))
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration{Hours: 3, Minutes: 30}
	v, err := d.Value()
	require.NoError(t, err)

	var back Duration
	require.NoError(t, back.Scan(v))
	assert.Equal(t, d, back)
	assert.Equal(t, 210*time.Minute, back.ToDuration())
	assert.True(t, back.Valid())
	assert.False(t, Duration{Minutes: 75}.Valid())
}

func TestDurationScan(t *testing.T) {
	d := Duration{Hours: 1}
	require.NoError(t, d.Scan([]byte(`{"hours":2,"minutes":15}`)))
	assert.Equal(t, "2h15m", d.String())

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Duration{}, d)

	assert.Error(t, d.Scan(42))
}

func TestStarBucket(t *testing.T) {
	assert.Equal(t, 0, StarBucket(1))
	assert.Equal(t, 0, StarBucket(0.2))
	assert.Equal(t, 3, StarBucket(4.4))
	assert.Equal(t, 4, StarBucket(4.5))
	assert.Equal(t, 4, StarBucket(9))
}
