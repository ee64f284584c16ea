package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newConsoleWriter builds the development console writer. Color is kept on
// unless disabled explicitly or the destination is not a terminal.
func newConsoleWriter(out io.Writer, p PrettyOptions) io.Writer {
	timeFormat := p.TimeFormat
	if timeFormat == emptyString {
		timeFormat = defaultTimeFormat
	}
	exclude := p.FieldsExclude
	if exclude == nil {
		exclude = defaultFieldsExclude
	}

	noColor := p.NoColor
	if !noColor && !writerIsTerminal(out) {
		noColor = true
	}

	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       noColor,
		TimeFormat:    timeFormat,
		FieldsExclude: exclude,
	}
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRollingFileWriter builds the lumberjack writer for a logger name.
func newRollingFileWriter(name string, fc *FileConfig) *lumberjack.Logger {
	if name == emptyString {
		name = DefaultAppName
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(fc.Dir, name+".log"),
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   fc.Compress,
	}
}
