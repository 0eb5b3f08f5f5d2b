package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[logs]
file = "service.log"
level = "debug"

[metrics]
enabled = true
service_name = "planning-test"

[hotelcore]
url = "http://localhost:8080/v1"
timeout = 5

[planner]
timezone = "Asia/Bangkok"
axis_days_before = 2
axis_length = 13
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:8080/v1", cfg.HotelCore.URL)
	assert.Equal(t, 5, cfg.HotelCore.Timeout)
	assert.Equal(t, "Asia/Bangkok", cfg.Planner.Timezone)
	assert.Equal(t, 13, cfg.Planner.AxisLength)
}

// Незаданные секции получают значения по умолчанию
func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[hotelcore]
url = "http://localhost:8080/v1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "Asia/Bangkok", cfg.Planner.Timezone)
	assert.Equal(t, 2, cfg.Planner.AxisDaysBefore)
	assert.Equal(t, 13, cfg.Planner.AxisLength)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing hotelcore url",
			content: `
[server]
http_port = 8090
`,
		},
		{
			name: "invalid port",
			content: `
[server]
http_port = 70000

[hotelcore]
url = "http://localhost:8080/v1"
`,
		},
		{
			name: "axis window before exceeds length",
			content: `
[hotelcore]
url = "http://localhost:8080/v1"

[planner]
axis_days_before = 13
axis_length = 13
`,
		},
		{
			name: "non-positive axis length",
			content: `
[hotelcore]
url = "http://localhost:8080/v1"

[planner]
axis_length = 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
