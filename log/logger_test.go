package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stripTime drops the timestamp in front of a log line.
func stripTime(s string) string {
	return s[strings.IndexByte(s, ' ')+1:]
}

func TestLogger(t *testing.T) {

	t.Run("default", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Info,
		}))

		L().Info("this is a test")

		require.Equal(t, "[INFO]  this is a test\n", stripTime(buf.String()))
	})

	t.Run("default with error level", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Error,
		}))

		L().Info("this is a test")

		require.Equal(t, "", buf.String())

		L().Error("this is a test")

		require.Equal(t, "[ERROR] this is a test\n", stripTime(buf.String()))
	})

	t.Run("off discards everything", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{
			Output: &buf,
			Level:  Off,
		})

		logger.Error("this is a test")
		logger.Trace("this is a test")

		require.Equal(t, "", buf.String())
	})

	t.Run("named from default", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Name:   "default",
			Output: &buf,
			Level:  Info,
		}))

		L().Named("test").Infof("this is a %s", "test")

		require.Equal(t, "[INFO]  default.test: this is a test\n", stripTime(buf.String()))
	})

	t.Run("reset name", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{
			Name:   "default",
			Output: &buf,
			Level:  Info,
		})

		logger.Named("a").ResetNamed("b").Warn("this is a test")

		require.Equal(t, "[WARN]  b: this is a test\n", stripTime(buf.String()))
	})

	t.Run("with level", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{
			Output: &buf,
			Level:  Error,
		})

		logger.Debug("this is a test")
		require.Equal(t, "", buf.String())

		debug := logger.WithLevel(Debug)
		require.Equal(t, Debug, debug.Level())
		require.Equal(t, Error, logger.Level())

		debug.Debug("this is a test")
		require.Equal(t, "[DEBUG] this is a test\n", stripTime(buf.String()))
	})

	t.Run("uses default output if none is given", func(t *testing.T) {

		var buf bytes.Buffer
		prev := DefaultOutput
		DefaultOutput = &buf
		defer func() { DefaultOutput = prev }()

		logger := New(&LoggerOptions{
			Name:  "test",
			Level: Info,
		})

		logger.Info("this is a test")

		require.Equal(t, "[INFO]  test: this is a test\n", stripTime(buf.String()))
	})

	t.Run("includes the caller location", func(t *testing.T) {

		var buf bytes.Buffer

		logger := New(&LoggerOptions{
			Name:            "test",
			Output:          &buf,
			Level:           Info,
			IncludeLocation: true,
		})

		logger.Info("this is a test")

		require.Regexp(t, `^\[INFO\]  log/logger_test.go:\d+: test: this is a test\n$`, stripTime(buf.String()))
	})

	t.Run("fatal exits", func(t *testing.T) {

		var buf bytes.Buffer
		var code int
		prev := osExit
		osExit = func(c int) { code = c }
		defer func() { osExit = prev }()

		logger := New(&LoggerOptions{
			Output: &buf,
			Level:  Error,
		})

		logger.Fatalf("killed in the name %s", "off")

		require.Equal(t, 1, code)
		require.Equal(t, "[FATAL] killed in the name off\n", stripTime(buf.String()))
	})

	t.Run("panic", func(t *testing.T) {

		logger := New(&LoggerOptions{
			Output: &bytes.Buffer{},
			Level:  Error,
		})

		require.PanicsWithValue(t, "boom", func() { logger.Panic("boom") })
	})
}

func TestLevelFromString(t *testing.T) {

	testCases := []struct {
		input    string
		expected Level
	}{
		{"off", Off},
		{"silent", Off},
		{"FATAL", Fatal},
		{" error ", Error},
		{"warn", Warn},
		{"info", Info},
		{"Debug", Debug},
		{"trace", Trace},
		{"verbose", NotSet},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expected, LevelFromString(c.input), "Wrong level in test case %d", i)
	}

	require.Equal(t, "debug", Debug.String())
	require.Equal(t, "unknown", NotSet.String())
}
