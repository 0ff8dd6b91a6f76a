// Package logging configures the process-wide logrus logger for the binaries.
package logging

import (
	"io"
	"os"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Setup 设置日志级别与输出。out 为 nil 时写到 stderr。
func Setup(level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return trace.BadParameter("invalid log level %q", level)
	}
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}
