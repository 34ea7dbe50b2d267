package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	console  io.Writer
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: KEYHINT_LOG_PATH environment variable
	if envPath := os.Getenv("KEYHINT_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

// SetConsole mirrors warnings and errors to w once Init has run.
// Pass nil to stop mirroring.
func SetConsole(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	console = w
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	if console != nil {
		mirror := zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
		out = zerolog.MultiLevelWriter(out, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: mirror},
			Level:  zerolog.WarnLevel,
		})
	}
	diagLog = zerolog.New(out).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(version, chord, mode string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("chord", chord).
		Str("mode", mode).
		Msg("session_start")
}

func SessionEnd(toggles int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("toggles", toggles).
		Msg("session_end")
}

func ShortcutsLoaded(dir string, apps, files, skipped int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("dir", dir).
		Int("apps", apps).
		Int("files", files).
		Int("skipped", skipped).
		Msg("shortcuts_loaded")
}

func Toggle(state, app string, rows int) {
	if !logReady {
		return
	}
	ev := diagLog.Info().Str("state", state)
	if app != "" {
		ev = ev.Str("app", app).Int("rows", rows)
	}
	ev.Msg("toggle")
}
