package gohocon

import (
	"io"
	"os"
	"sync"

	"github.com/alecthomas/repr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debugMu      sync.Mutex
	debugEnabled bool
	sugared      *zap.SugaredLogger
)

// SetDebug enables or disables diagnostic logging, settable once at
// process startup (§9: "must be settable once at startup; the core does
// no runtime mutation of process state" beyond this single flag).
func SetDebug(b bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = b
	if b && sugared == nil {
		sugared = newDebugLogger(os.Stderr)
	}
}

func newDebugLogger(w io.Writer) *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Sugar()
}

// logf writes a sender-tagged debug line iff SetDebug(true) was called;
// it is a no-op otherwise, mirroring the teacher's logf/Logf pair but
// backed by zap instead of stdlib log.
func logf(sender, format string, args ...interface{}) {
	debugMu.Lock()
	l := sugared
	on := debugEnabled
	debugMu.Unlock()
	if !on || l == nil {
		return
	}
	l.Debugf("["+sender+"] "+format, args...)
}

// dumpTree renders t with alecthomas/repr for debug logging, used when
// a caller wants to inspect the shape of a finished parse.
func dumpTree(sender string, t *Tree) {
	if t == nil {
		return
	}
	logf(sender, "%s", repr.String(t, repr.Indent("  ")))
}
