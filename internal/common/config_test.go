package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults are valid", Config{
			Archive: ArchiveConfig{DialTimeout: 3 * time.Second},
			Log:     LogConfig{Level: "info"},
		}, false},
		{"empty dsn disables archiving", Config{
			Log: LogConfig{Level: "debug"},
		}, false},
		{"dsn without a positive dial timeout", Config{
			Archive: ArchiveConfig{DSN: "archive.db"},
		}, true},
		{"unknown log level", Config{
			Log: LogConfig{Level: "loud"},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "warn"}}
	assert.Equal(t, "WARN", cfg.SlogLevel().String())
	cfg.Log.Level = "nonsense"
	assert.Equal(t, "INFO", cfg.SlogLevel().String())
}
