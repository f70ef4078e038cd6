// Package executor runs external scanning tools as subprocesses and
// classifies the outcome: clean exit, tool-reported failure, wall-clock
// timeout, or a process that could not be started at all.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// Result captures one subprocess invocation. Produced exactly once per call;
// the caller owns it and decides what the exit code means for its tool.
type Result struct {
	Succeeded bool
	ExitCode  int
	Stdout    string
	Stderr    string
	TimedOut  bool
}

// StartError reports that the process never ran: executable missing,
// permission denied, or an empty argv. This is an environment problem, not a
// scan outcome, and the boundary surfaces it as an internal error.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// waitDelay is the grace period between killing the process group and giving
// up on the pipe readers.
const waitDelay = 5 * time.Second

// Execute spawns argv[0] with the remaining elements as arguments, resolved
// via PATH, never through a shell. The process group is killed once timeout
// elapses; a timed-out Result has ExitCode -1 and TimedOut set instead of an
// error. Captured output is decoded best-effort, replacing invalid bytes.
func Execute(parent context.Context, argv []string, timeout time.Duration) (Result, error) {
	if len(argv) == 0 {
		return Result{}, &StartError{Command: "", Err: errors.New("empty argv")}
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	// Tools like sqlmap and wpscan fork helpers; killing the group keeps
	// them from outliving a timed-out scan.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)

	result := Result{
		Stdout:   decode(stdout.Bytes()),
		Stderr:   decode(stderr.Bytes()),
		TimedOut: timedOut,
		ExitCode: -1,
	}

	if runErr == nil {
		result.Succeeded = true
		result.ExitCode = cmd.ProcessState.ExitCode()
		return result, nil
	}

	if timedOut {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return Result{}, &StartError{Command: argv[0], Err: runErr}
}

func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
