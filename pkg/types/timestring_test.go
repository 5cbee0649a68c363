package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hours and minutes", input: "09:30", want: 570},
		{name: "postgres time column", input: "18:00:00", want: 1080},
		{name: "fractional zero seconds", input: "07:15:00.000000", want: 435},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "midnight", input: "00:00", want: 0},
		{name: "single digit hour", input: "9:30", wantErr: true},
		{name: "minutes overflow", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:30", wantErr: true},
		{name: "non zero seconds", input: "10:00:15", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.False(t, got.IsZero())
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := MustTimeString("21:00")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "22:30", end.String())
	assert.Equal(t, 90, end.Sub(start))
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	midnight, err := MustTimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, "24:00", midnight.String())

	_, err = MustTimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_Zero(t *testing.T) {
	var zero TimeString
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
	assert.Error(t, zero.Validate())
	assert.False(t, zero.Equal(MustTimeString("00:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan("11:30"))
	assert.Equal(t, "11:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 45, 0, 0, time.UTC)))
	assert.Equal(t, "08:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := MustTimeString("19:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "19:00:00", v)

	v, err = TimeString{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		Start TimeString  `json:"start"`
		End   *TimeString `json:"end,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"18:00"}`), &p))
	assert.Equal(t, 1080, p.Start.Minutes())
	assert.Nil(t, p.End)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"18:00"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"6pm"}`), &p))
}
