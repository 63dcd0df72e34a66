package processor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/csvfilter/internal/domain/errors"
	"github.com/leengari/csvfilter/internal/domain/table"
	"github.com/leengari/csvfilter/internal/filter"
	"github.com/leengari/csvfilter/internal/source"
)

// Processor projects and filters CSV input
// A Processor holds no per-run state and may be shared between goroutines
type Processor struct {
	logger    *slog.Logger
	mu        sync.RWMutex
	observers []Observer // Observers for lifecycle events
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver registers an observer at construction time
func WithObserver(observer Observer) Option {
	return func(p *Processor) {
		p.AddObserver(observer)
	}
}

// New creates a Processor
func New(opts ...Option) *Processor {
	p := &Processor{
		logger:    slog.Default(),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessText processes CSV held in memory and writes the result to w
func (p *Processor) ProcessText(ctx context.Context, w io.Writer, csv, selected, filters string) error {
	return p.Process(ctx, w, source.FromString(csv), selected, filters)
}

// ProcessFile processes the CSV file at path and writes the result to w
// If the file cannot be opened nothing is written
func (p *Processor) ProcessFile(ctx context.Context, w io.Writer, path, selected, filters string) error {
	lines, err := source.Open(path)
	if err != nil {
		err = &errors.UnreadableSourceError{Path: path, Err: err}
		p.notify(Event{Type: EventAborted, RunID: uuid.New().String(), Data: err.Error()})
		return err
	}
	return p.Process(ctx, w, lines, selected, filters)
}

// Process runs the projection and filtering over lines and closes them
// Output is all-or-nothing: on any error w is left untouched
func (p *Processor) Process(ctx context.Context, w io.Writer, lines source.Lines, selected, filters string) (err error) {
	defer lines.Close()

	runID := uuid.New().String()
	defer func() {
		if err != nil {
			p.notify(Event{Type: EventAborted, RunID: runID, Data: err.Error()})
		}
	}()

	tbl := table.New()

	// 1. Header line
	headerLine, ok := nextRecord(lines)
	if err := lines.Err(); err != nil {
		return err
	}
	if !ok {
		p.logger.Debug("csv input has no header line", "run_id", runID)
	}

	// 2. Column selection
	if err := addColumns(tbl, headerLine, selected); err != nil {
		return err
	}
	p.notify(Event{Type: EventHeaderParsed, RunID: runID, Data: map[string]interface{}{
		"columns":  tbl.ColCount(),
		"selected": tbl.SelectedHeaders(),
	}})

	// 3. Filters, resolved against every column
	parsed, err := filter.Parse(filters, tbl)
	if err != nil {
		return err
	}
	set := filter.NewSet(parsed)
	p.notify(Event{Type: EventFiltersBuilt, RunID: runID, Data: set.Len()})
	for _, f := range parsed {
		p.logger.Debug("filter defined", "run_id", runID, "column", tbl.Column(f.Column).Header, "filter", f.String())
	}

	// 4. Data rows
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, ok := nextRecord(lines)
		if !ok {
			break
		}
		stats.Rows++
		if addFilteredRow(tbl, record, set) {
			stats.Accepted++
		} else {
			stats.Rejected++
		}
	}
	if err := lines.Err(); err != nil {
		return err
	}
	p.notify(Event{Type: EventRowsIngested, RunID: runID, Data: stats})

	// 5. Output
	n, err := tbl.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write csv output: %w", err)
	}
	p.notify(Event{Type: EventOutputWritten, RunID: runID, Data: n})

	return nil
}

// nextRecord skips blank records, which never carry data
func nextRecord(lines source.Lines) (string, bool) {
	for {
		line, ok := lines.Next()
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
	}
}

// IsUserError reports whether err is one of the diagnostic errors caused by
// the caller's input rather than by I/O
func IsUserError(err error) bool {
	var notFound *errors.HeaderNotFoundError
	var invalid *errors.InvalidFilterError
	var unreadable *errors.UnreadableSourceError
	return stderrors.As(err, &notFound) || stderrors.As(err, &invalid) || stderrors.As(err, &unreadable)
}

// AddObserver registers an observer to receive lifecycle events
func (p *Processor) AddObserver(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// RemoveObserver unregisters an observer
func (p *Processor) RemoveObserver(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, o := range p.observers {
		if o == observer {
			p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (p *Processor) notify(event Event) {
	event.Timestamp = time.Now()
	p.mu.RLock()
	observers := p.observers
	p.mu.RUnlock()
	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
