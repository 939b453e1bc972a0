package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "Greetings! I am VendorSelector-AI, your supplier evaluation assistant. Please share your supplier data in CSV or JSON format to begin.\n"},
		{"urgent", []string{"--urgent", "--name", "Ada"}, "VendorSelector-AI here! Let's quickly evaluate your supplier data.\n"},
		{"name", []string{"--name", "Ada", "--time", "23:00"}, "Hello, Ada! I'm VendorSelector-AI, here to help select the best supplier.\n"},
		{"afternoon", []string{"--time", "13:05"}, "Good afternoon! Let's evaluate your supplier data together.\n"},
		{"evening", []string{"--time", "18"}, "Good evening! I'm here to help review your supplier details.\n"},
		{"late", []string{"--time", "02:00"}, "Hello! VendorSelector-AI is working late to assist you.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			res := execute(t, "", append([]string{"greet"}, tt.args...)...)
			assert.Equal(t, 0, res.exitCode)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestGreetCommand_BadTime(t *testing.T) {
	chdirTemp(t)
	res := execute(t, "", "greet", "--time", "teatime")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "Error: invalid time")
}

func TestFormulaCommand(t *testing.T) {
	chdirTemp(t)
	res := execute(t, "", "formula")

	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Contains(t, res.stdout, `\frac{\text{price\_score}}{100} \times 0.4`)
	assert.Contains(t, res.stdout, "delivery_reliability_score")
	assert.Contains(t, res.stdout, "Quality Rating Score")
	assert.Contains(t, res.stdout, "Total")
	assert.Contains(t, res.stdout, "1.0")
	assert.Contains(t, res.stdout, "half away from zero")
}

func TestInitCommand(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("VENDORSEL_MODE", "tolerant")

	res := execute(t, "", "init")
	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Equal(t, "Wrote .vendorselrc.json\n", res.stdout)

	data, err := os.ReadFile(filepath.Join(dir, ".vendorselrc.json"))
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "tolerant", saved["mode"])
	assert.Equal(t, "markdown", saved["format"])

	res = execute(t, "", "init")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "already exists")

	res = execute(t, "", "init", "--force")
	assert.Equal(t, 0, res.exitCode, res.stderr)
}
