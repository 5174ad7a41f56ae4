package proofkit

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Ana! You've been greeted from Go!", Greet("Ana"))
	assert.Equal(t, "Hello, ! You've been greeted from Go!", Greet(""))
}

func TestValidateImage(t *testing.T) {
	path := writeFile(t, []byte("global"))

	rec := ValidateImage(path)
	assert.True(t, rec.Valid)
	assert.Equal(t, sha256Hex([]byte("global")), rec.Hash)
	assert.Nil(t, rec.Error)

	rec = ValidateImage(path + ".missing")
	assert.False(t, rec.Valid)
	assertExclusive(t, rec)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestWithPrefix_New(t *testing.T) {
	v, err := WithPrefix("").New()
	require.NoError(t, err)
	assert.Equal(t, ChecksumSHA256, v.Algorithm())
}

func TestValidate_ConcurrentCalls(t *testing.T) {
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = writeFile(t, []byte{byte(i)})
	}
	v := newTestValidator(t, WithChunkSize(1))

	var wg sync.WaitGroup
	got := make([]Record, len(paths))
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = v.Validate(p).Record()
		}()
	}
	wg.Wait()

	for i, rec := range got {
		assert.True(t, rec.Valid)
		assert.Equal(t, sha256Hex([]byte{byte(i)}), rec.Hash)
	}
}

// resetDefault clears the global instance so Init runs again.
func resetDefault() {
	defaultValidator = nil
	defaultFallback = nil
	defaultErr = nil
	defaultOnce = sync.Once{}
}

func TestDefault_InvalidEnvFallsBackOnce(t *testing.T) {
	t.Setenv("BEAVER_PROOFKIT_ALGORITHM", "md4")
	resetDefault()
	t.Cleanup(resetDefault)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	first := Default()
	require.NotNil(t, first)
	assert.Same(t, first, Default())
	assert.Equal(t, ChecksumSHA256, first.Algorithm())

	path := writeFile(t, []byte("fallback"))
	for i := 0; i < 3; i++ {
		rec := ValidateImage(path)
		assert.True(t, rec.Valid)
		assert.Equal(t, sha256Hex([]byte("fallback")), rec.Hash)
	}

	assert.Equal(t, 1, strings.Count(buf.String(), "using default settings"))
	assert.ErrorIs(t, Init(), ErrInvalidConfig)
}
