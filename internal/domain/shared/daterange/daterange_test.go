package daterange_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/domain/shared/daterange"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: "2025-06-10", want: "2025-06-10"},
		{name: "api date-time", in: "2025-06-10T00:00:00.000Z", want: "2025-06-10"},
		{name: "offset date-time reduced to utc", in: "2025-06-10T01:30:00+02:00", want: "2025-06-09"},
		{name: "surrounding spaces", in: " 2025-06-10 ", want: "2025-06-10"},
		{name: "empty is unset", in: "", want: ""},
		{name: "garbage", in: "next tuesday", wantErr: true},
		{name: "impossible day", in: "2025-02-30", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := daterange.ParseDate(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, daterange.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
		})
	}
}

func TestDate_ISODateTime(t *testing.T) {
	assert.Equal(t, "2025-06-10T00:00:00.000Z", daterange.MustParse("2025-06-10").ISODateTime())
	assert.Equal(t, "", daterange.Date{}.ISODateTime())
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		D daterange.Date  `json:"d"`
		P *daterange.Date `json:"p"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-03-29","p":null}`), &payload))
	assert.Equal(t, daterange.NewDate(2025, time.March, 29), payload.D)
	assert.Nil(t, payload.P)

	out, err := json.Marshal(payload.D)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-03-29"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"d":"29/03/2025"}`), &payload))
}

func TestToday_UsesLocation(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)
	// 23:30 UTC on the 9th is already the 10th in Oslo.
	now := time.Date(2025, time.June, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-10", daterange.Today(now, oslo).String())
	assert.Equal(t, "2025-06-09", daterange.Today(now, time.UTC).String())
}

func TestDateRange_Nights(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to string
		want     int
	}{
		{name: "two nights", from: "2025-06-16", to: "2025-06-18", want: 2},
		{name: "same day", from: "2025-01-01", to: "2025-01-01", want: 0},
		{name: "reversed", from: "2025-01-05", to: "2025-01-01", want: 0},
		{name: "spring forward", from: "2025-03-29", to: "2025-03-31", want: 2},
		{name: "across spring forward night", from: "2025-03-29", to: "2025-03-30", want: 1},
		{name: "fall back", from: "2025-10-25", to: "2025-10-27", want: 2},
		{name: "unset check-out", from: "2025-01-01", to: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dr := daterange.DateRange{CheckIn: daterange.MustParse(tc.from), CheckOut: daterange.MustParse(tc.to)}
			assert.Equal(t, tc.want, dr.NightsIn(oslo))
		})
	}
}

func TestDateRange_Validate(t *testing.T) {
	same := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-10"), CheckOut: daterange.MustParse("2025-06-10")}
	assert.ErrorIs(t, same.Validate(), daterange.ErrInvalidRange)

	dr := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-10"), CheckOut: daterange.MustParse("2025-06-12")}
	require.NoError(t, dr.Validate())
	assert.True(t, dr.ContainsDate(daterange.MustParse("2025-06-11")))
	assert.False(t, dr.ContainsDate(daterange.MustParse("2025-06-12")))
}

func TestDateRange_Overlaps(t *testing.T) {
	stay := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-10"), CheckOut: daterange.MustParse("2025-06-15")}
	inside := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-12"), CheckOut: daterange.MustParse("2025-06-14")}
	after := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-15"), CheckOut: daterange.MustParse("2025-06-18")}

	assert.True(t, stay.Overlaps(inside))
	assert.True(t, inside.Overlaps(stay))
	assert.False(t, stay.Overlaps(after))
}

func TestEachInclusive(t *testing.T) {
	var got []string
	daterange.EachInclusive(daterange.MustParse("2025-02-27"), daterange.MustParse("2025-03-01"), func(d daterange.Date) bool {
		got = append(got, d.String())
		return true
	})
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01"}, got)

	got = nil
	daterange.EachInclusive(daterange.MustParse("2025-03-01"), daterange.MustParse("2025-02-27"), func(d daterange.Date) bool {
		got = append(got, d.String())
		return true
	})
	assert.Empty(t, got)
}

func TestEachNight_StopsEarly(t *testing.T) {
	dr := daterange.DateRange{CheckIn: daterange.MustParse("2025-06-10"), CheckOut: daterange.MustParse("2025-06-20")}
	count := 0
	dr.EachNight(func(daterange.Date) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
