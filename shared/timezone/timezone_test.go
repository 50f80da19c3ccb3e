package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/shared/timezone"
)

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.Equal(t, timezone.Location(), timezone.Now().Location())
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.LoadLocation(""))
	assert.Equal(t, time.UTC, timezone.LoadLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Jakarta", timezone.LoadLocation("Asia/Jakarta").String())
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	want := instant.In(timezone.Location()).Format(time.RFC3339)

	assert.Equal(t, want, timezone.Format(instant, time.RFC3339))
}

func TestDate(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	lateEvening := time.Date(2024, 6, 1, 23, 30, 0, 0, jakarta)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), timezone.Date(lateEvening))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 is truncated to its day", input: "2024-06-05T14:30:00Z", want: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, tt.input[:10], timezone.FormatDate(got))
		})
	}
}
