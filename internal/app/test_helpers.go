package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/registry"
)

// SafeBuffer captures log and order output from app runs under test. Its
// mutex keeps writes whole when handlers log from their own goroutines.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest boots an App against the given loader and frame config,
// capturing all of its output in the returned buffer. The log level is
// forced to debug so assertions can match breadcrumb lines.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(logBuffer, appConfig, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("FGGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
