package filing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"finverse/internal/config"
	"finverse/internal/domain"
)

// DefaultTimeout is the wall-clock budget for one parser invocation.
const DefaultTimeout = 5 * time.Minute

// OutcomeKind tags the terminal condition of one parser invocation.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeProcessFailure
	OutcomeTimedOut
)

// Outcome is the single result of one supervised subprocess run. Exactly one
// of the three kinds is produced per call.
type Outcome struct {
	Kind     OutcomeKind
	Stdout   string // accumulated stdout text, Success only
	Stderr   string // accumulated stderr text, ProcessFailure only
	ExitCode int    // ProcessFailure only
}

// Runner supervises the external parser subprocess.
type Runner struct {
	program string
	script  string
	timeout time.Duration
}

// NewRunner creates a Runner from parser config, falling back to the default
// five-minute timeout.
func NewRunner(cfg *config.ParserConfig) *Runner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		program: cfg.Program,
		script:  cfg.Script,
		timeout: timeout,
	}
}

// Timeout returns the wall-clock budget enforced per run.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Run starts one child process with ticker, form type, and year as positional
// arguments, and races its exit against the timeout. Whichever resolves first
// wins: the timer is stopped when the process exits, and the process is
// killed and reaped when the timer fires, so no child outlives the call.
func (r *Runner) Run(ctx context.Context, req domain.FilingRequest) (Outcome, error) {
	cmd := exec.CommandContext(ctx, r.program, r.script,
		req.Ticker, string(req.FormType), strconv.Itoa(req.Year))
	// Run the parser in its own process group so the timeout path can kill
	// every descendant, not just the direct child.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("starting %s: %w", r.program, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return Outcome{
					Kind:     OutcomeProcessFailure,
					Stderr:   stderr.String(),
					ExitCode: exitErr.ExitCode(),
				}, nil
			}
			return Outcome{}, fmt.Errorf("waiting for %s: %w", r.program, err)
		}
		return Outcome{Kind: OutcomeSuccess, Stdout: stdout.String()}, nil

	case <-timer.C:
		// Kill the whole group: a descendant holding the inherited stdout
		// pipe would otherwise keep Wait blocked past the deadline.
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		// Reap the child before returning; its buffers are discarded.
		<-done
		return Outcome{Kind: OutcomeTimedOut}, nil
	}
}
