package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ConsoleWriter)(nil)

// ConsoleWriter renders recorded status updates as plain lines on a
// terminal: one line when a phase starts, its attached output verbatim,
// and a failure line when a phase ends in error.
type ConsoleWriter struct {
	mu      sync.Mutex
	out     io.Writer
	started map[string]bool
	done    map[string]bool
}

// NewConsoleWriter creates a ConsoleWriter rendering to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:     out,
		started: make(map[string]bool),
		done:    make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if !w.started[v.Id] {
			w.started[v.Id] = true
			fmt.Fprintf(w.out, "=> %s\n", v.Name)
		}
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true
		if v.Error != nil {
			fmt.Fprintf(w.out, "!! %s: %s\n", v.Name, v.GetError())
		}
	}

	for _, log := range update.Logs {
		_, _ = w.out.Write(log.Data)
	}
	return nil
}

// Close implements progrock.Writer.
func (w *ConsoleWriter) Close() error {
	return nil
}
