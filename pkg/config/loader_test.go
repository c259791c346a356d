package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/config"
)

type serverConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type appConfig struct {
	Env         string       `env:"APP_ENV" envDefault:"development"`
	RulesetFile string       `env:"RULESET_FILE"`
	Debug       bool         `env:"DEBUG" envDefault:"false"`
	Server      serverConfig `envPrefix:"HTTP_"`
}

type requiredConfig struct {
	Secret string `env:"SECRET,required"`
}

type checkedConfig struct {
	Port int `env:"PORT" envDefault:"0"`
}

func (c checkedConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.False(t, cfg.Debug)
	})

	t.Run("values and prefix", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg,
			config.WithPrefix("REGFORM_"),
			config.WithEnvironment(map[string]string{
				"REGFORM_APP_ENV":      "production",
				"REGFORM_RULESET_FILE": "rules.yaml",
				"REGFORM_HTTP_ADDR":    ":9000",
				"APP_ENV":              "ignored",
			}),
		)
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "rules.yaml", cfg.RulesetFile)
		assert.Equal(t, ":9000", cfg.Server.Addr)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"DEBUG": "maybe"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required value", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("validator", func(t *testing.T) {
		t.Parallel()
		var cfg checkedConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})), config.ErrInvalidConfig)
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{"PORT": "80"})))
		assert.Equal(t, 80, cfg.Port)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REGFORM_TEST_RULESET=from-file.yaml\nREGFORM_TEST_SECRET=\"s3cret\"\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("REGFORM_TEST_RULESET")
		os.Unsetenv("REGFORM_TEST_SECRET")
	})

	var cfg struct {
		Ruleset string `env:"REGFORM_TEST_RULESET"`
		Secret  string `env:"REGFORM_TEST_SECRET"`
	}
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))

	assert.Equal(t, "from-file.yaml", cfg.Ruleset)
	assert.Equal(t, "s3cret", cfg.Secret)

	err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
