package config_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/pkg/config"
	"github.com/dmitrymomot/refined/pkg/constant"
	"github.com/dmitrymomot/refined/pkg/logger"
	"github.com/dmitrymomot/refined/pkg/refined"
)

type maxPort struct{}

func (maxPort) Value() int { return 65536 }

type three struct{}

func (three) Value() int { return 3 }

type port = refined.Refined[int, refined.Between[int, constant.Zero[int], maxPort]]

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type ServerConfig struct {
	Port    port                                                            `env:"SERVER_PORT" envDefault:"8080"`
	Workers refined.Refined[int, refined.Positive[int]]                     `env:"SERVER_WORKERS,required"`
	Timeout refined.Refined[time.Duration, refined.Positive[time.Duration]] `env:"SERVER_TIMEOUT" envDefault:"30s"`
}

type FileConfig struct {
	Port     port                                 `env:"FILE_PORT"`
	Replicas refined.Vector[int, three]           `env:"FILE_REPLICAS"`
	Key      refined.Bytes[constant.Sixteen[int]] `env:"FILE_KEY"`
}

type SecretConfig struct {
	APIKey refined.Refined[string, refined.RuneCountIs[refined.EqualTo[int, constant.ThirtyTwo[int]]]] `env:"SECRET_API_KEY"`
	Port   port                                                                                        `env:"SECRET_PORT" envDefault:"8080"`
}

type PrefixedConfig struct {
	Port port `env:"PORT"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")
	config.ResetCache()

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")
	config.ResetCache()

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.Equal(t, true, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.NotErrorIs(t, err, config.ErrInvalidValue)

	t.Setenv("REQUIRED_VALUE", "now_set")
	require.NoError(t, config.Load(&cfg), "failed loads are not cached")
	assert.Equal(t, "now_set", cfg.Required)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first")
	config.ResetCache()

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second")
	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.TestString, "cached value is served until the cache is reset")

	config.ResetCache()
	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.TestString)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "shared")
	config.ResetCache()

	var wg sync.WaitGroup
	results := make([]TestConfigSingleton, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, config.Load(&results[i]))
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared", r.TestString)
	}
}

func TestLoad_RefinedFields(t *testing.T) {
	t.Run("passes for valid values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "443")
		t.Setenv("SERVER_WORKERS", "4")
		t.Setenv("SERVER_TIMEOUT", "1m")
		config.ResetCache()

		var cfg ServerConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 443, cfg.Port.Unwrap())
		assert.Equal(t, 4, cfg.Workers.Unwrap())
		assert.Equal(t, time.Minute, cfg.Timeout.Unwrap())
	})

	t.Run("applies defaults through the constraint", func(t *testing.T) {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SERVER_TIMEOUT")
		t.Setenv("SERVER_WORKERS", "1")
		config.ResetCache()

		var cfg ServerConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8080, cfg.Port.Unwrap())
		assert.Equal(t, 30*time.Second, cfg.Timeout.Unwrap())
	})

	t.Run("fails for values violating the constraint", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		t.Setenv("SERVER_WORKERS", "0")
		config.ResetCache()

		var cfg ServerConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.ErrorIs(t, err, config.ErrInvalidValue)
		assert.True(t, refined.IsViolation(err))

		violations := refined.ExtractViolations(err)
		assert.Equal(t, []string{"Port", "Workers"}, violations.Fields())

		var v *refined.Violation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "70000", v.Value)
	})

	t.Run("fails for undecodable values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "http")
		t.Setenv("SERVER_WORKERS", "1")
		config.ResetCache()

		var cfg ServerConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.NotErrorIs(t, err, config.ErrInvalidValue)
	})
}

func TestLoad_WithEnvFiles(t *testing.T) {
	os.Unsetenv("FILE_PORT")
	os.Unsetenv("FILE_REPLICAS")
	os.Unsetenv("FILE_KEY")
	t.Cleanup(func() {
		os.Unsetenv("FILE_PORT")
		os.Unsetenv("FILE_REPLICAS")
		os.Unsetenv("FILE_KEY")
	})
	config.ResetCache()

	var cfg FileConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.refined")))
	assert.Equal(t, 9090, cfg.Port.Unwrap())
	assert.Equal(t, []int{1, 2, 3}, cfg.Replicas.Slice())
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", cfg.Key.String())
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg FileConfig
	err := config.Load(&cfg, config.WithEnvFiles("testdata/does-not-exist.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Setenv("API_PORT", "8000")
	t.Setenv("ADMIN_PORT", "9000")
	config.ResetCache()

	var api, admin PrefixedConfig
	require.NoError(t, config.Load(&api, config.WithPrefix("API_")))
	require.NoError(t, config.Load(&admin, config.WithPrefix("ADMIN_")))
	assert.Equal(t, 8000, api.Port.Unwrap())
	assert.Equal(t, 9000, admin.Port.Unwrap())
}

func TestLoad_WithLogger(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")
	t.Setenv("SERVER_WORKERS", "2")
	config.ResetCache()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithRedactedValues())

	var cfg ServerConfig
	require.Error(t, config.Load(&cfg, config.WithLogger(log)))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "config rejected", entry["msg"])
	assert.Equal(t, "config", entry["component"])

	violations, ok := entry["violations"].(map[string]any)
	require.True(t, ok)
	port, ok := violations["Port"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, logger.Redacted, port["value"])
}

func TestLoad_ProductionLogOmitsValues(t *testing.T) {
	t.Run("rejected value", func(t *testing.T) {
		t.Setenv("SECRET_API_KEY", "hunter2-supersecret")
		os.Unsetenv("SECRET_PORT")
		config.ResetCache()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("billing"), logger.WithOutput(buf))

		var cfg SecretConfig
		err := config.Load(&cfg, config.WithLogger(log))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidValue)

		assert.NotContains(t, buf.String(), "hunter2-supersecret")
		assert.NotContains(t, buf.String(), `"error"`)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		violations, ok := entry["violations"].(map[string]any)
		require.True(t, ok)
		key, ok := violations["APIKey"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, logger.Redacted, key["value"])
	})

	t.Run("undecodable value", func(t *testing.T) {
		t.Setenv("SECRET_API_KEY", "0123456789abcdef0123456789abcdef")
		t.Setenv("SECRET_PORT", "http-secret")
		config.ResetCache()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("billing"), logger.WithOutput(buf))

		var cfg SecretConfig
		err := config.Load(&cfg, config.WithLogger(log))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.NotErrorIs(t, err, config.ErrInvalidValue)

		assert.NotContains(t, buf.String(), "http-secret")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		errs, ok := entry["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, errs["0"], `"Port"`)
		assert.NotContains(t, entry, "violations")
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("SERVER_WORKERS", "1")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg ServerConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("SERVER_PORT", "1")
	assert.NotPanics(t, func() {
		var cfg ServerConfig
		config.MustLoad(&cfg)
	})
}
