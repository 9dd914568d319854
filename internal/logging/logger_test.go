package logging

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("whatever"))
}

func TestSetup_FileAndStdout(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	logFile := filepath.Join(t.TempDir(), "service")
	Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogToStdout: true,
		LogLevel:    "debug",
	})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.Debugf("plan generated for profile %d", 42)

	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "plan generated for profile 42")
}

// testSentryHook returns a hook bound to its own hub, recording events instead of sending them.
func testSentryHook(t *testing.T, levels []logrus.Level) (*SentryHook, func() []*sentry.Event) {
	t.Helper()

	var mu sync.Mutex
	var events []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return nil
		},
	})
	require.NoError(t, err)

	hook := &SentryHook{
		levels: levels,
		hub:    sentry.NewHub(client, sentry.NewScope()),
	}
	return hook, func() []*sentry.Event {
		mu.Lock()
		defer mu.Unlock()
		return events
	}
}

func TestSentryHook_Fire(t *testing.T) {
	hook, recorded := testSentryHook(t, []logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.SetOutput(&discard{})
	logger.AddHook(hook)

	logger.WithError(errors.New("redis down")).WithField("layer", "redis").Error("plan cache set failed")
	logger.Warn("not forwarded")

	events := recorded()
	require.Len(t, events, 1)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "redis down", events[0].Exception[0].Value)
	assert.Equal(t, "redis", events[0].Extra["layer"])
	assert.Equal(t, "plan cache set failed", events[0].Extra["message"])
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
