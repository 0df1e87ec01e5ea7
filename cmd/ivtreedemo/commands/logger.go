package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cenkalti/log"
)

var defaultLogHandler log.Handler

func init() {
	h := log.NewWriterHandler(os.Stderr)
	h.SetFormatter(logFormatter{})
	h.Colorize = true
	defaultLogHandler = h
}

type logFormatter struct{}

// Format outputs a message like "2014-02-28 18:15:57 INFO     [find] find.go:38 searching [0,8191] over 2 seeded ranges".
func (f logFormatter) Format(rec *log.Record) string {
	return fmt.Sprintf("%s %-8s [%s] %-8s %s",
		fmt.Sprint(rec.Time)[:19],
		log.LevelNames[rec.Level],
		rec.LoggerName,
		filepath.Base(rec.Filename)+":"+strconv.Itoa(rec.Line),
		rec.Message)
}

func newLogger(name string) log.Logger {
	l := log.NewLogger(name)
	l.SetLevel(log.DEBUG)
	l.SetHandler(defaultLogHandler)
	return l
}
