// Package app implements the application layer for evry.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"go.trai.ch/evry/internal/adapters/config"
	"go.trai.ch/evry/internal/adapters/printer"
	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/evry/internal/core/ports"
	"go.trai.ch/evry/internal/engine/decide"
	"go.trai.ch/evry/internal/engine/parse"
	"go.trai.ch/evry/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// statusReaders bounds the concurrent tag file reads during Status.
const statusReaders = 8

// App represents the main application logic.
type App struct {
	store      ports.TagStore
	clock      ports.Clock
	logger     ports.Logger
	cfg        *config.Config
	out        io.Writer
	emitterFor func(debug, jsonMode bool) ports.Emitter
}

// New creates a new App instance.
func New(store ports.TagStore, clock ports.Clock, log ports.Logger, cfg *config.Config) *App {
	return &App{
		store:      store,
		clock:      clock,
		logger:     log,
		cfg:        cfg,
		out:        os.Stdout,
		emitterFor: printer.Select,
	}
}

// WithOutput redirects stdout output.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithEmitterFactory replaces the debug emitter constructor.
// This is primarily used for testing.
func (a *App) WithEmitterFactory(f func(debug, jsonMode bool) ports.Emitter) *App {
	a.emitterFor = f
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Debug bool
	JSON  bool
	Lock  bool
}

// Run evaluates whether the duration given by durationText has elapsed since
// the tag's recorded last run. When it has (or the tag has never run), the
// current time is persisted and nil is returned. When it has not, nothing is
// persisted and the returned error wraps domain.ErrNotElapsed.
func (a *App) Run(_ context.Context, tag, durationText string, opts RunOptions) (err error) {
	if tag == "" {
		return domain.ErrEmptyTag
	}

	debug, jsonMode := a.resolveModes(opts)
	em := a.emitterFor(debug, jsonMode)
	defer func() {
		if ferr := em.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	em.EmitJSON("tag_name", tag)
	em.EmitJSON("data_file", a.store.Path(tag))

	threshold, perr := parse.Parse(durationText)
	if perr != nil {
		a.appendParseError(durationText, perr)
		em.Emit("error", perr.Error())
		return zerr.With(zerr.Wrap(perr, "could not parse duration"), "input", durationText)
	}

	em.EmitJSON("duration", strconv.FormatUint(uint64(threshold), 10))
	em.EmitJSON("duration_pretty", threshold.Describe())

	if opts.Lock {
		release, lerr := a.store.Lock(tag)
		if lerr != nil {
			return lerr
		}
		defer func() {
			if rerr := release(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	exists := a.store.Exists(tag)
	var lastRun domain.Milliseconds
	if exists {
		// A tag file we cannot read is fatal. Defaulting to a first run here
		// would silently reset the schedule.
		if lastRun, err = a.store.Read(tag); err != nil {
			return err
		}
	}

	now := a.clock.Now()
	outcome := decide.Evaluate(now, exists, lastRun, threshold)

	switch outcome.Decision {
	case domain.DecisionFirstRun:
		em.Emit("log", "no previous run recorded, permitting")
	case domain.DecisionElapsed:
		em.Emit("log", fmt.Sprintf("%s have passed since last run, permitting", threshold.Describe()))
	case domain.DecisionNotElapsed:
		em.Emit("log", fmt.Sprintf("next run permitted in %s", outcome.Remaining.Describe()))
		em.EmitJSON("till_next", strconv.FormatUint(uint64(outcome.Remaining), 10))
		em.EmitJSON("till_next_pretty", outcome.Remaining.Describe())
		return domain.ErrNotElapsed
	}

	if err = a.store.Write(tag, now); err != nil {
		return err
	}
	em.EmitJSON("last_run", strconv.FormatUint(uint64(now), 10))
	return nil
}

// Duration parses durationText without touching the store. Without debug it
// prints the total as whole seconds; with debug the emitter carries the
// millisecond total, the seconds and the pretty form.
func (a *App) Duration(durationText string, opts RunOptions) (err error) {
	total, perr := parse.Parse(durationText)
	if perr != nil {
		return zerr.With(zerr.Wrap(perr, "could not parse duration"), "input", durationText)
	}

	debug, jsonMode := a.resolveModes(opts)
	if !debug {
		fmt.Fprintln(a.out, total.Seconds())
		return nil
	}

	em := a.emitterFor(debug, jsonMode)
	defer func() {
		if ferr := em.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()
	em.Emit("duration", strconv.FormatUint(uint64(total), 10))
	em.Emit("duration_seconds", strconv.FormatUint(total.Seconds(), 10))
	em.Emit("duration_pretty", total.Describe())
	return nil
}

// Location prints the filesystem path backing the tag.
func (a *App) Location(tag string) error {
	if tag == "" {
		return domain.ErrEmptyTag
	}
	fmt.Fprintln(a.out, a.store.Path(tag))
	return nil
}

// Rollback restores the tag's timestamp from the snapshot taken before the
// most recent overwrite.
func (a *App) Rollback(tag string) error {
	if tag == "" {
		return domain.ErrEmptyTag
	}
	if err := a.store.Restore(tag); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("restored previous run time for %q", tag))
	return nil
}

// Status lists every known tag with the age of its last run.
func (a *App) Status(ctx context.Context) error {
	tags, err := a.store.List()
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		a.logger.Info("no tags recorded")
		return nil
	}

	lastRuns := make([]domain.Milliseconds, len(tags))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(statusReaders)
	for i, tag := range tags {
		g.Go(func() error {
			value, rerr := a.store.Read(tag)
			if rerr != nil {
				return rerr
			}
			lastRuns[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rows := make([]statusRow, len(tags))
	for i := range tags {
		rows[i] = statusRow{tag: tags[i], lastRun: lastRuns[i]}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].tag < rows[j].tag })

	now := a.clock.Now()
	for _, row := range rows {
		fmt.Fprintln(a.out, row.render(now))
	}
	return nil
}

type statusRow struct {
	tag     string
	lastRun domain.Milliseconds
}

func (r statusRow) render(now domain.Milliseconds) string {
	if r.lastRun > now {
		// The clock moved backwards since this run was recorded; the tag
		// waits out its full threshold on the next evaluation.
		return fmt.Sprintf("%s %s %s",
			style.Waiting.Render(style.Circle),
			r.tag,
			style.Muted.Render("last run recorded in the future"),
		)
	}
	age := now - r.lastRun
	return fmt.Sprintf("%s %s %s",
		style.Ready.Render(style.Check),
		r.tag,
		style.Muted.Render(fmt.Sprintf("last run %s ago", age.Describe())),
	)
}

// resolveModes merges the CLI flags with the resolved configuration.
// JSON output implies debug.
func (a *App) resolveModes(opts RunOptions) (debug, jsonMode bool) {
	jsonMode = opts.JSON || a.cfg.JSON
	debug = opts.Debug || a.cfg.Debug || jsonMode
	return debug, jsonMode
}

// appendParseError appends a failed parse to the configured log file. Logging
// failures are reported but never fail the run; the parse error itself does.
func (a *App) appendParseError(input string, perr error) {
	path := a.cfg.ParseErrorLog
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not open parse error log %s: %v", path, err))
		return
	}
	defer f.Close()

	stamp := time.UnixMilli(int64(a.clock.Now())).UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(f, "%s|%s|%v\n", stamp, input, perr); err != nil {
		a.logger.Warn(fmt.Sprintf("could not write parse error log %s: %v", path, err))
	}
}
