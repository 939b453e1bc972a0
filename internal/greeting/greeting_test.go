package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{}, defaultText},
		{"urgent wins over everything", Options{Name: "Ada", Time: "09:00", Urgent: true}, urgentText},
		{"name wins over time", Options{Name: "Ada", Time: "09:00"}, "Hello, Ada! I'm VendorSelector-AI, here to help select the best supplier."},
		{"early morning edge", Options{Time: "05:00"}, morningText},
		{"late morning", Options{Time: "11:59"}, morningText},
		{"noon", Options{Time: "12:00"}, afternoonText},
		{"hour only", Options{Time: "16"}, afternoonText},
		{"evening edge", Options{Time: "17:00"}, eveningText},
		{"last evening hour", Options{Time: "21:30"}, eveningText},
		{"late night", Options{Time: "22:00"}, lateText},
		{"small hours", Options{Time: "04:59"}, lateText},
		{"midnight", Options{Time: "00:00"}, lateText},
		{"leading zero", Options{Time: "09:15"}, morningText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Greeting(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGreeting_InvalidTime(t *testing.T) {
	for _, bad := range []string{"noon", ":30", "ab:cd"} {
		_, err := Greeting(Options{Time: bad})
		assert.Error(t, err, bad)
	}

	// Urgent and name never look at the time.
	_, err := Greeting(Options{Time: "noon", Urgent: true})
	assert.NoError(t, err)
}

func TestDefaultMentionsFormats(t *testing.T) {
	got, err := Greeting(Options{})
	require.NoError(t, err)
	assert.Contains(t, got, "CSV or JSON")
}
