package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Configure(Options{})
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	reset(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Equal(t, "[DEBUG] test message arg\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	assert.Empty(t, buf.String())
}

func TestSection(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	Section("Catalog")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Section("Catalog")
	assert.Equal(t, "\n=== Catalog ===\n", buf.String())
}

func TestInfoWarnError_AlwaysPrinted(t *testing.T) {
	tests := []struct {
		name   string
		log    func(string, ...any)
		prefix string
	}{
		{"info", Info, "[INFO] "},
		{"warn", Warn, "[WARN] "},
		{"error", Error, "[ERROR] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)

			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(false)

			tt.log("loaded %d products", 3)

			assert.Equal(t, tt.prefix+"loaded 3 products\n", buf.String())
		})
	}
}

func TestConfigure_Production(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	Configure(Options{Production: true})

	Info("hello %s", "world")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello world", entry["msg"])
}

func TestConfigure_File(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "storefront.log")
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure(Options{File: path})

	Warn("catalog slow")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog slow")
	assert.Contains(t, buf.String(), "[WARN] catalog slow")
}

func TestL(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	L().Info("structured")

	assert.True(t, strings.HasPrefix(buf.String(), "[INFO] structured"))
}

func TestConcurrentAccess(t *testing.T) {
	reset(t)

	var buf syncBuffer
	SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("debug %d", 1)
		}()
		go func() {
			defer wg.Done()
			_ = IsVerbose()
			Info("info %d", 2)
		}()
	}
	wg.Wait()

	assert.Contains(t, buf.String(), "[INFO] info 2")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
