package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

// CommonLogger is one channel split by severity; each severity rotates into its own file.
type CommonLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
	Stream  zerolog.Logger
}

// AppLogger separates HTTP and database output from websocket traffic.
type AppLogger struct {
	Http CommonLogger
	WS   CommonLogger
}

// NewLogger writes to stdout and to rotating files under dir. level is a zerolog level name;
// an unknown name falls back to info.
func NewLogger(dir, level string) *AppLogger {
	_ = os.MkdirAll(dir, 0o755)

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = timeFormat

	console := consoleWriter(os.Stdout, false)
	return &AppLogger{
		Http: newChannel(console, dir, "", parsed),
		WS:   newChannel(console, dir, "ws.", parsed),
	}
}

// NewNopLogger discards everything. Used by tests.
func NewNopLogger() *AppLogger {
	nop := zerolog.Nop()
	common := CommonLogger{Info: nop, Error: nop, Trace: nop, Warning: nop, Stream: nop}
	return &AppLogger{Http: common, WS: common}
}

func newChannel(console io.Writer, dir, prefix string, level zerolog.Level) CommonLogger {
	open := func(name string) zerolog.Logger {
		file := consoleWriter(rotatingFile(filepath.Join(dir, prefix+name+".log")), true)
		return zerolog.New(io.MultiWriter(console, file)).Level(level).With().Timestamp().Logger()
	}
	return CommonLogger{
		Stream:  open("stream"),
		Info:    open("info"),
		Trace:   open("trace"),
		Warning: open("warning"),
		Error:   open("error"),
	}
}

func rotatingFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxAge:     20,
		MaxBackups: 5,
		Compress:   true,
	}
}

func consoleWriter(out io.Writer, plain bool) zerolog.ConsoleWriter {
	writer := zerolog.ConsoleWriter{
		Out:             out,
		NoColor:         plain,
		TimeFormat:      timeFormat,
		FormatTimestamp: func(i interface{}) string { return fmt.Sprintf("[%s]", i) },
		FormatLevel: func(i interface{}) string {
			level, _ := i.(string)
			return "[" + strings.ToUpper(level) + "]"
		},
		FormatMessage: func(i interface{}) string { return fmt.Sprint(i) },
	}
	if plain {
		writer.FormatFieldName = func(i interface{}) string { return fmt.Sprintf("%s=", i) }
		writer.FormatFieldValue = func(i interface{}) string { return fmt.Sprint(i) }
	}
	return writer
}
