// Package mqlog provides dual-format logging for a solver run: a
// human-readable console stream and a structured JSONL event stream, both
// optional, tagged with a run ID so multiple concurrent invocations can be
// told apart in a merged log.
package mqlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// Logger writes solver-run events to an optional console writer and an
// optional JSONL file writer. Either may be nil to disable that channel.
type Logger struct {
	console   io.Writer
	file      io.Writer
	runID     uuid.UUID
	startTime time.Time
}

// New returns a Logger tagging every event with a freshly generated run ID.
func New(console, file io.Writer) *Logger {
	return &Logger{
		console:   console,
		file:      file,
		runID:     uuid.New(),
		startTime: time.Now(),
	}
}

// RunID returns the UUID tagging every event this Logger emits.
func (l *Logger) RunID() uuid.UUID { return l.runID }

// Event is a single JSONL log entry.
type Event struct {
	RunID     uuid.UUID `json:"run_id"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`

	K         *int     `json:"k,omitempty"`
	Moves     *int     `json:"moves,omitempty"`
	Density   *float64 `json:"density,omitempty"`
	BestRho   *float64 `json:"best_density,omitempty"`
	Gamma     *float64 `json:"gamma,omitempty"`
	Stagn     *int     `json:"stagnation,omitempty"`
	Heavy     *bool    `json:"heavy,omitempty"`
	Feasible  *bool    `json:"feasible,omitempty"`
	Message   string   `json:"message,omitempty"`
}

func (l *Logger) writeJSON(e Event) {
	if l.file == nil {
		return
	}
	e.RunID = l.runID
	e.Timestamp = time.Now()
	e.ElapsedMs = time.Since(l.startTime).Milliseconds()

	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	data = append(data, '\n')
	mustWrite(l.file, data)
}

// LogStart logs the beginning of a SolveFixedK or SolveMaxK call.
func (l *Logger) LogStart(k int, gamma float64) {
	if l.console != nil {
		mustFprintf(l.console, "[%s] starting search: k=%d gamma=%.4f\n", l.runID, k, gamma)
	}
	l.writeJSON(Event{Event: "start", K: &k, Gamma: &gamma})
}

// LogImprovement logs a new best density found within the current run.
func (l *Logger) LogImprovement(moves int, density float64) {
	if l.console != nil {
		mustFprintf(l.console, "[%s] moves=%d: new best density %.6f\n", l.runID, moves, density)
	}
	l.writeJSON(Event{Event: "improvement", Moves: &moves, Density: &density})
}

// LogPerturbation logs a heavy or mild perturbation triggered by
// stagnation.
func (l *Logger) LogPerturbation(moves int, heavy bool) {
	kind := "mild"
	if heavy {
		kind = "heavy"
	}
	if l.console != nil {
		mustFprintf(l.console, "[%s] moves=%d: %s perturbation\n", l.runID, moves, kind)
	}
	l.writeJSON(Event{Event: "perturbation", Moves: &moves, Heavy: &heavy})
}

// LogStagnation logs that the inner loop has accumulated L consecutive
// non-improving steps.
func (l *Logger) LogStagnation(moves, stagn int) {
	l.writeJSON(Event{Event: "stagnation", Moves: &moves, Stagn: &stagn})
}

// LogEnd logs the end of a search call.
func (l *Logger) LogEnd(moves int, bestRho float64, feasible bool) {
	elapsed := time.Since(l.startTime)
	if l.console != nil {
		mustFprintf(l.console, "[%s] done after %d moves (%v): density=%.6f feasible=%v\n",
			l.runID, moves, elapsed.Round(time.Millisecond), bestRho, feasible)
	}
	l.writeJSON(Event{Event: "end", Moves: &moves, BestRho: &bestRho, Feasible: &feasible})
}

func mustWrite(w io.Writer, p []byte) {
	if _, err := w.Write(p); err != nil {
		log.Printf("mqlog: write failed: %v", err)
	}
}

func mustFprintf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Printf("mqlog: write failed: %v", err)
	}
}
