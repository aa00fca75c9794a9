package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampDecodesZonelessValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			"rfc3339 with zone",
			`"2026-08-31T09:30:00+05:30"`,
			time.Date(2026, 8, 31, 9, 30, 0, 0, time.FixedZone("", 5*3600+30*60)),
		},
		{
			"zone-less with microseconds",
			`"2026-08-31T09:30:00.123456"`,
			time.Date(2026, 8, 31, 9, 30, 0, 123456000, time.UTC),
		},
		{
			"zone-less without fraction",
			`"2026-08-31T09:30:00"`,
			time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		},
		{
			"space separator",
			`"2026-08-31 09:30:00"`,
			time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampDecodesNullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestampMarshalRoundTrip(t *testing.T) {
	in := Timestamp{Time: time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-31T09:30:00Z"`, string(data))

	var out Timestamp
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Equal(in.Time))
}

func TestTimestampMarshalZeroIsNull(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestAttendanceDecodesAPIShape(t *testing.T) {
	payload := `{
		"id": "att-1",
		"gym_id": "gym-1",
		"member_id": "mem-1",
		"check_in_time": "2026-08-31T06:45:12.000421",
		"check_out_time": null,
		"marked_by": null,
		"member_name": "Arun Verma",
		"member_phone": "9876543210",
		"marked_by_name": null
	}`

	var a Attendance
	require.NoError(t, json.Unmarshal([]byte(payload), &a))
	assert.Equal(t, "att-1", a.ID)
	assert.False(t, a.CheckInTime.IsZero())
	assert.Nil(t, a.CheckOutTime)
	require.NotNil(t, a.MemberName)
	assert.Equal(t, "Arun Verma", *a.MemberName)
}
