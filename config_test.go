package proofkit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				Algorithm:       "sha256",
				ChunkSize:       32768,
				LogLevel:        "info",
				LogFormat:       "text",
				WatchDebounceMS: 100,
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"BEAVER_PROOFKIT_ALGORITHM":         "blake3",
				"BEAVER_PROOFKIT_CHUNK_SIZE":        "1024",
				"BEAVER_PROOFKIT_LOG_LEVEL":         "debug",
				"BEAVER_PROOFKIT_LOG_FORMAT":        "json",
				"BEAVER_PROOFKIT_WATCH_DEBOUNCE_MS": "250",
			},
			want: Config{
				Algorithm:       "blake3",
				ChunkSize:       1024,
				LogLevel:        "debug",
				LogFormat:       "json",
				WatchDebounceMS: 250,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := GetConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{Algorithm: "SHA-512", ChunkSize: 4096, WatchDebounceMS: 20}

	opts, err := cfg.Options()
	require.NoError(t, err)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, ChecksumSHA512, o.Algorithm)
	assert.Equal(t, 4096, o.ChunkSize)
	assert.Equal(t, 20*time.Millisecond, o.WatchDebounce)
}

func TestConfig_OptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown algorithm", Config{Algorithm: "md5", ChunkSize: 1}},
		{"zero chunk size", Config{Algorithm: "sha256", ChunkSize: 0}},
		{"negative debounce", Config{Algorithm: "sha256", ChunkSize: 1, WatchDebounceMS: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := (&Config{LogLevel: "warn", LogFormat: "json"}).NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "path", "a.jpg")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"path":"a.jpg"`)

	_, err = (&Config{LogLevel: "loud"}).NewLogger(&buf)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = (&Config{LogLevel: "info", LogFormat: "xml"}).NewLogger(&buf)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewFromConfig(t *testing.T) {
	v, err := NewFromConfig(&Config{Algorithm: "xxhash", ChunkSize: 8, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)
	assert.Equal(t, ChecksumXXHash, v.Algorithm())

	_, err = NewFromConfig(&Config{Algorithm: "sha256", ChunkSize: 8, LogLevel: "nope"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidator_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := newTestValidator(t, WithLogger(logger))

	v.Validate(writeFile(t, []byte("x")))
	v.Validate(t.TempDir() + "/missing")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[0], "file validated")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "kind=open")
}
