package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MAX_TRANSIT_DIST", "")
	t.Setenv("DELETE_RETRY_DELAY", "")

	cfg := Load()
	assert.Equal(t, 2.0, cfg.MaxTransitDist)
	assert.Equal(t, 5*time.Second, cfg.DeleteRetryDelay)
	assert.Equal(t, "apartment-bot", cfg.BotUsername)
	assert.Equal(t, "I searched for that on our Help Center", cfg.HelpCenterPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAX_TRANSIT_DIST", "1.5")
	t.Setenv("SLACK_HISTORY_LIMIT", "250")
	t.Setenv("DELETE_RETRY_DELAY", "2s")
	t.Setenv("CLEAR_APARTMENTS_TEXT", "wipe")

	cfg := Load()
	assert.Equal(t, 1.5, cfg.MaxTransitDist)
	assert.Equal(t, 250, cfg.HistoryLimit)
	assert.Equal(t, 2*time.Second, cfg.DeleteRetryDelay)
	assert.Equal(t, "wipe", cfg.ClearText)
}

func TestLoad_BadNumberFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "abc")
	assert.Equal(t, 587, Load().SMTPPort)
}

func TestLoadGeoSettings_Default(t *testing.T) {
	settings, err := LoadGeoSettings(&Config{MaxTransitDist: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, settings.Areas)
	assert.NotEmpty(t, settings.Stations)
	assert.Contains(t, settings.Neighborhoods, "rockridge")
	assert.Equal(t, 3.0, settings.MaxTransitDist)
}

func TestLoadGeoSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geo.json")
	data := `{
		"areas": [{"name": "TestHood", "box": {
			"bottom_left": {"latitude": 37.0, "longitude": -122.0},
			"top_right": {"latitude": 37.1, "longitude": -122.1}}}],
		"stations": [{"name": "Near", "location": {"latitude": 37.05, "longitude": -122.05}}],
		"neighborhoods": ["mission"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	settings, err := LoadGeoSettings(&Config{GeoSettingsFile: path, MaxTransitDist: 2})
	require.NoError(t, err)
	require.Len(t, settings.Areas, 1)
	assert.Equal(t, "TestHood", settings.Areas[0].Name)
	assert.Equal(t, -122.1, settings.Areas[0].Box.TopRight.Lon)
	assert.Equal(t, "Near", settings.Stations[0].Name)
	assert.Equal(t, 2.0, settings.MaxTransitDist)
}

func TestLoadGeoSettings_BadFile(t *testing.T) {
	_, err := LoadGeoSettings(&Config{GeoSettingsFile: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadGeoSettings(&Config{GeoSettingsFile: path})
	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, NewLogger(&Config{LogLevel: "debug"}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger(&Config{LogLevel: "nonsense"}).GetLevel())
}

func TestNewSlack_RequiresToken(t *testing.T) {
	_, err := NewSlack(&Config{})
	assert.Error(t, err)

	c, err := NewSlack(&Config{SlackToken: "xoxb-1"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewSentry_NoDSN(t *testing.T) {
	assert.NoError(t, NewSentry(&Config{}))
}
