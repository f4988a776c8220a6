package timestamp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339 with offset",
			in:   "2024-01-01T12:00:00+02:00",
			want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 utc",
			in:   "2024-01-01T12:00:00Z",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "zoneless with microseconds is utc",
			in:   "2024-01-01T12:00:00.123000",
			want: time.Date(2024, 1, 1, 12, 0, 0, 123000000, time.UTC),
		},
		{
			name: "zoneless without fraction",
			in:   "2024-01-01T12:00:00",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "space separated",
			in:   "2024-01-01 12:00:00.5",
			want: time.Date(2024, 1, 1, 12, 0, 0, 500000000, time.UTC),
		},
		{name: "garbage", in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestTime_JSONDecodesServiceRecord(t *testing.T) {
	var rec struct {
		CreatedAt Time  `json:"created_at"`
		UpdatedAt *Time `json:"updated_at"`
	}
	err := json.Unmarshal([]byte(`{"created_at":"2024-01-01T12:00:00.123000","updated_at":null}`), &rec)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 123000000, time.UTC), rec.CreatedAt.UTC())
	assert.Nil(t, rec.UpdatedAt)
}

func TestTime_JSONRejectsNonString(t *testing.T) {
	var v Time
	require.Error(t, json.Unmarshal([]byte(`1704110400`), &v))
}

func TestTime_JSONEncodesRFC3339(t *testing.T) {
	out, err := json.Marshal(New(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-01T12:00:00Z"`, string(out))
}

func TestTime_YAMLRoundTrip(t *testing.T) {
	type rec struct {
		CreatedAt Time `yaml:"created_at"`
	}
	var in rec
	require.NoError(t, yaml.Unmarshal([]byte("created_at: 2024-01-01T12:00:00.123000\n"), &in))
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 123000000, time.UTC), in.CreatedAt.UTC())

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-01-01T12:00:00.123Z")
}
