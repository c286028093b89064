package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{name: "valid morning", value: "09:00"},
		{name: "valid midnight", value: "00:00"},
		{name: "valid end of day", value: "23:59"},
		{name: "empty", value: "", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "10:60", wantErr: true},
		{name: "with seconds", value: "09:00:00", wantErr: true},
		{name: "garbage", value: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		value TimeString
		want  int
	}{
		{value: "00:00", want: 0},
		{value: "09:00", want: 540},
		{value: "18:30", want: 1110},
		{value: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			got, err := tt.value.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "within the day", value: "09:00", add: 90, want: "10:30"},
		{name: "zero", value: "09:00", add: 0, want: "09:00"},
		{name: "backwards", value: "09:00", add: -30, want: "08:30"},
		{name: "lands on last minute", value: "23:00", add: 59, want: "23:59"},
		{name: "crosses midnight forward", value: "23:30", add: 45, wantErr: true},
		{name: "crosses midnight backward", value: "00:10", add: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.AddMinutes(tt.add)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:15").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:15", v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{name: "plain string", src: "10:15", want: "10:15"},
		{name: "postgres time with seconds", src: "10:15:00", want: "10:15"},
		{name: "bytes", src: []byte("08:45:30"), want: "08:45"},
		{name: "time value", src: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC), want: "14:30"},
		{name: "null", src: nil, want: ""},
		{name: "invalid string", src: "late", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("11:45")
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:45"), ts)

	_, err = NewTimeStringFromString("11:75")
	assert.Error(t, err)
}
