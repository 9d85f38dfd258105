package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/pkg/contree"
)

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	NewConsoleLogger(true).Verbose("scanned %d pages", 4)

	require.NoError(t, w.Close())
	os.Stderr = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	assert.Equal(t, "[VERBOSE] scanned 4 pages\n", buf.String())
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		log      func(l contree.Logger)
		expected string
	}{
		{"verbose shown", true, func(l contree.Logger) { l.Verbose("cache miss for %s", "find-a-png") }, "[VERBOSE] cache miss for find-a-png\n"},
		{"verbose hidden", false, func(l contree.Logger) { l.Verbose("cache miss for %s", "find-a-png") }, ""},
		{"info", false, func(l contree.Logger) { l.Info("resolved %s", "/logo.png") }, "resolved /logo.png\n"},
		{"error", false, func(l contree.Logger) { l.Error("manifest %s: %v", "tree.yaml", "bad indent") }, "[ERROR] manifest tree.yaml: bad indent\n"},
		{"regex without args", false, func(l contree.Logger) { l.Info("#%d+#") }, "#%d+#\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, tt.verbose))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
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

func TestConsoleLogger_LinesStayWhole(t *testing.T) {
	out := &syncBuffer{}
	logger := NewConsoleLoggerTo(out, true)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("page /p%d", i)
			logger.Verbose("page /p%d", i)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.buf.String()), "\n")
	require.Len(t, lines, 16)
	for _, line := range lines {
		assert.Regexp(t, `^(\[VERBOSE\] )?page /p\d$`, line)
	}
}

func TestNewConsoleLoggerTo_NilWriter(t *testing.T) {
	assert.PanicsWithValue(t, "out cannot be nil", func() { NewConsoleLoggerTo(nil, false) })
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()
	assert.NotPanics(t, func() {
		logger.Info("resolved %s", "/logo.png")
		logger.Verbose("cache hit")
		logger.Error("failed")
	})
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLoggerTo(io.Discard, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("cache miss for %s", "find-images-png")
	}
}

func ExampleConsoleLogger() {
	logger := NewConsoleLoggerTo(os.Stdout, true)
	logger.Info("Resolving %s", "cover.png")
	logger.Verbose("cache miss")
	logger.Error("resolution failed")
	fmt.Println("Done")
	// Output:
	// Resolving cover.png
	// [VERBOSE] cache miss
	// [ERROR] resolution failed
	// Done
}
