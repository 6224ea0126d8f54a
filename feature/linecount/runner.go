package linecount

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"line-counter/core/codec"
	"line-counter/core/config"
	"line-counter/core/fault"
	"line-counter/core/job"
	"line-counter/core/lines"
	"line-counter/core/storage"

	"go.uber.org/zap"
)

// State is a phase of a run.
type State int

const (
	StateIdle State = iota
	StateConfiguring
	StateOpening
	StateCounting
	StateReporting
	StateDone
	StateFailed
)

var stateNames = [...]string{"Idle", "Configuring", "Opening", "Counting", "Reporting", "Done", "Failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// RunError is the single terminal failure of a run.
type RunError struct {
	// Phase is the state the run was in when it failed.
	Phase State
	// Location is the display URI of the object, empty if configuration failed.
	Location string
	Err      error
}

func (e *RunError) Error() string {
	phase := strings.ToLower(e.Phase.String())
	if e.Location == "" {
		return fmt.Sprintf("%s failed [%s]: %v", phase, fault.Kind(e.Err), e.Err)
	}
	return fmt.Sprintf("%s %s failed [%s]: %v", phase, e.Location, fault.Kind(e.Err), e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// ClientFactory builds a storage client authenticated with creds.
type ClientFactory func(creds storage.Credentials) (storage.Client, error)

// StorageClientFactory returns a ClientFactory for the configured provider.
func StorageClientFactory(cfg storage.Config) ClientFactory {
	return func(creds storage.Credentials) (storage.Client, error) {
		return storage.NewClient(cfg, creds)
	}
}

// Options tunes a run.
type Options struct {
	// Decompress enables transparent decompression by key extension.
	Decompress bool
	// Timeout bounds the whole run. Zero means none.
	Timeout time.Duration
	// Retry is the transport retry policy of the storage reader.
	Retry storage.RetryPolicy
}

// NewOptions derives run options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Decompress: cfg.Count.Decompress,
		Timeout:    time.Duration(cfg.Count.TimeoutSeconds) * time.Second,
		Retry:      cfg.Storage.RetryPolicy(),
	}
}

// Runner executes one count at a time. It is not safe for concurrent use.
type Runner struct {
	newClient ClientFactory
	opts      Options
	logger    *zap.Logger
	reporter  Reporter
	state     State
}

// NewRunner creates a Runner. A nil reporter skips the Reporting phase output.
func NewRunner(newClient ClientFactory, opts Options, logger *zap.Logger, reporter Reporter) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		newClient: newClient,
		opts:      opts,
		logger:    logger,
		reporter:  reporter,
	}
}

// State returns the phase the last run reached.
func (r *Runner) State() State {
	return r.state
}

// Run resolves settings, counts the lines of the object they point at and reports the result.
func (r *Runner) Run(ctx context.Context, settings job.Settings) (Report, error) {
	start := time.Now()

	r.transition(StateConfiguring, "")
	j, err := settings.Build()
	if err != nil {
		return Report{}, r.fail(StateConfiguring, "", err)
	}

	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	res, err := r.count(ctx, j)
	if err != nil {
		return Report{}, err
	}

	rep := newReport(j.URI(), res, time.Since(start))

	r.transition(StateReporting, j.URI())
	r.logger.Info("Line count",
		zap.String("location", rep.Location),
		zap.Uint64("lines", rep.Lines),
		zap.Uint64("bytes", rep.Bytes),
		zap.Duration("duration", rep.Duration),
	)
	if r.reporter != nil {
		if err := r.reporter.Report(rep); err != nil {
			return Report{}, r.fail(StateReporting, j.URI(), err)
		}
	}

	r.transition(StateDone, j.URI())
	return rep, nil
}

func (r *Runner) count(ctx context.Context, j job.Job) (lines.Result, error) {
	loc := j.Location()

	r.transition(StateOpening, j.URI())
	client, err := r.newClient(j.Credentials())
	if err != nil {
		return lines.Result{}, r.fail(StateOpening, j.URI(), err)
	}

	raw, err := storage.NewReader(client, r.opts.Retry, r.logger).Open(ctx, loc)
	if err != nil {
		return lines.Result{}, r.fail(StateOpening, j.URI(), err)
	}
	defer r.closeStream(raw, loc)

	r.transition(StateCounting, j.URI())
	var src io.Reader = raw
	if r.opts.Decompress {
		dec, err := codec.Wrap(loc.Key, raw)
		if err != nil {
			return lines.Result{}, r.fail(StateCounting, j.URI(), err)
		}
		defer r.closeStream(dec, loc)
		src = dec
	}

	res, err := lines.Count(ctx, src)
	if err != nil {
		return lines.Result{}, r.fail(StateCounting, j.URI(), err)
	}
	return res, nil
}

func (r *Runner) closeStream(c io.Closer, loc storage.Location) {
	if err := c.Close(); err != nil {
		r.logger.Debug("Failed to close object stream", zap.String("location", loc.String()), zap.Error(err))
	}
}

func (r *Runner) transition(to State, location string) {
	r.logger.Debug("Run state changed",
		zap.Stringer("from", r.state),
		zap.Stringer("to", to),
		zap.String("location", location),
	)
	r.state = to
}

func (r *Runner) fail(phase State, location string, err error) error {
	r.transition(StateFailed, location)
	return &RunError{Phase: phase, Location: location, Err: err}
}
