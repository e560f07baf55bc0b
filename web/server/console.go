package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var renderCounter atomic.Uint64

// newRenderID returns a process-unique identifier for one render request
func newRenderID() string {
	return fmt.Sprintf("render-%d-%d", time.Now().Unix(), renderCounter.Add(1))
}

// WebLogger implements core.Logger by writing to the server log, tagged with
// the render it belongs to
type WebLogger struct {
	renderID string
	logger   *log.Logger
}

// NewWebLogger creates a new web logger for a specific render.
// A nil logger means the standard logger.
func NewWebLogger(renderID string, logger *log.Logger) core.Logger {
	if logger == nil {
		logger = log.Default()
	}
	return &WebLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	wl.logger.Printf("[%s] %s", wl.renderID, message)
}
