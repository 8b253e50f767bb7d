package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"pollInterval": "2s",
			"sqlitePath":   "crm.db",
		},
		"reminder": map[string]any{
			"restoreOnStart": true,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_POLLINTERVAL", want: "store.pollInterval"},
		{envKey: "STORE_SQLITE_PATH", want: "store.sqlite.path"},
		{envKey: "STORE_SQLITEPATH", want: "store.sqlitePath"},
		{envKey: "REMINDER_RESTOREONSTART", want: "reminder.restoreOnStart"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreDriverFirestore, cfg.Store.Driver)
	assert.Equal(t, defaultPollInterval, cfg.Store.PollInterval)
	assert.Equal(t, AuthProviderFirebase, cfg.Auth.Provider)

	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, defaultSweepSchedule, cfg.Reminder.SweepSchedule)
	assert.True(t, cfg.Reminder.RestoreOnStart)
	assert.Equal(t, defaultCreatedTitle, cfg.Reminder.CreatedTitle)
	assert.Equal(t, defaultUpdatedTitle, cfg.Reminder.UpdatedTitle)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store:    StoreConfig{Driver: StoreDriverSQLite, PollInterval: time.Minute},
		Auth:     &AuthConfig{Provider: AuthProviderJWT},
		Reminder: &ReminderConfig{CreatedTitle: "Recordatorio"},
	}
	applyDefaults(cfg)

	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, time.Minute, cfg.Store.PollInterval)
	assert.Equal(t, AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, "Recordatorio", cfg.Reminder.CreatedTitle)
	assert.Empty(t, cfg.Reminder.SweepSchedule)
	assert.False(t, cfg.Reminder.RestoreOnStart)
}

func TestReminderConfig_Location(t *testing.T) {
	var nilCfg *ReminderConfig
	assert.Equal(t, time.Local, nilCfg.Location())
	assert.Equal(t, time.Local, (&ReminderConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "America/Mexico_City", (&ReminderConfig{Timezone: "America/Mexico_City"}).Location().String())
}

func TestReminderConfig_Validate(t *testing.T) {
	var nilCfg *ReminderConfig
	assert.NoError(t, nilCfg.validate())
	assert.NoError(t, (&ReminderConfig{}).validate())
	assert.NoError(t, (&ReminderConfig{Timezone: "America/Mexico_City"}).validate())

	err := (&ReminderConfig{Timezone: "Not/AZone"}).validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestNew_ReminderTimezone(t *testing.T) {
	t.Setenv("REMINDER_TIMEZONE", "America/Bogota")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", cfg.Reminder.Location().String())

	t.Setenv("REMINDER_TIMEZONE", "Not/AZone")
	_, err = New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reminder timezone")
}
