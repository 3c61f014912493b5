package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteepTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "clock hh:mm:ss", input: "00:03:00", want: 3 * time.Minute},
		{name: "clock with hours", input: "01:02:03", want: time.Hour + 2*time.Minute + 3*time.Second},
		{name: "clock mm:ss", input: "02:30", want: 2*time.Minute + 30*time.Second},
		{name: "go duration", input: "90s", want: 90 * time.Second},
		{name: "surrounding whitespace", input: " 00:02:00 ", want: 2 * time.Minute},
		{name: "empty", input: "", wantErr: true},
		{name: "not a duration", input: "three minutes", wantErr: true},
		{name: "too many segments", input: "1:2:3:4", wantErr: true},
		{name: "minutes above 59", input: "00:61:00", wantErr: true},
		{name: "negative segment", input: "00:-3:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSteepTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSteepTimeParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Duration())
		})
	}
}

func TestSteepTimeString(t *testing.T) {
	assert.Equal(t, "00:02:00", SteepTime(2*time.Minute).String())
	assert.Equal(t, "01:30:05", SteepTime(time.Hour+30*time.Minute+5*time.Second).String())
}

func TestSteepTimeJSON(t *testing.T) {
	tea := TeaVariety{Name: "Oolong", SteepTime: SteepTime(3 * time.Minute), BrewTemp: 195}

	data, err := json.Marshal(tea)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"steepTime":"00:03:00"`)

	var back TeaVariety
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tea, back)

	var bad TeaVariety
	err = json.Unmarshal([]byte(`{"name":"x","steepTime":"bogus","brewTemp":200}`), &bad)
	assert.ErrorIs(t, err, ErrSteepTimeParse)
}
