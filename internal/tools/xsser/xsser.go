// Package xsser adapts a Python XSS scanner script. The script is not a
// PATH binary, so the interpreter and script location come from config.
//
// The output heuristics here track one scanner version; the patterns are
// package variables so a format drift is a one-line fix.
package xsser

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"toolbridge/internal/executor"
	"toolbridge/internal/model"
	"toolbridge/internal/tools"
)

const Name = "xsser"

var execute = executor.Execute

// Options locates the scanner script and fixes its per-request HTTP timeout
// (the wall-clock budget for the whole scan is separate).
type Options struct {
	Python         string
	Script         string
	RequestTimeout int
}

// BuildArgs maps a validated request to the interpreter argument vector.
// The request's Data field is the payload vector, passed through --data.
func BuildArgs(req model.XSSRequest, opts Options) []string {
	args := []string{opts.Python, opts.Script, "-u", req.URL}

	if req.Crawl {
		args = append(args, "--crawl")
	}

	args = append(args,
		"-t", strconv.Itoa(req.Threads),
		"--timeout", strconv.Itoa(opts.RequestTimeout),
	)

	if req.Data != "" {
		args = append(args, "--data", req.Data)
	}

	return args
}

const (
	maxPayloads        = 10
	maxTestedEndpoints = 20
)

var (
	vulnerablePattern = regexp.MustCompile(`(?im)^\s*(?:\[\+\]\s*)?vulnerable(?:\s+(?:url|endpoint))?\s*:\s*(\S+)`)
	payloadPattern    = regexp.MustCompile(`(?im)^\s*(?:\[\*\]\s*)?payload\s*:\s*(.+?)\s*$`)
	testedPattern     = regexp.MustCompile(`(?im)^\s*(?:\[-\]\s*)?testing\s*:?\s+(\S+)`)
)

// Parse collects deduplicated vulnerable endpoints, payloads (capped at 10),
// and tested endpoints (capped at 20). The overall flag is set when any
// endpoint matched or the text mentions "vulnerable" at all.
func Parse(output string) model.XSSResult {
	result := model.XSSResult{
		VulnerableEndpoints: []string{},
		Payloads:            []string{},
		TestedEndpoints:     []string{},
	}

	seenVuln := map[string]struct{}{}
	for _, m := range vulnerablePattern.FindAllStringSubmatch(output, -1) {
		result.VulnerableEndpoints = tools.AppendUnique(result.VulnerableEndpoints, seenVuln, 0, m[1])
	}

	seenPayloads := map[string]struct{}{}
	for _, m := range payloadPattern.FindAllStringSubmatch(output, -1) {
		result.Payloads = tools.AppendUnique(result.Payloads, seenPayloads, maxPayloads, m[1])
	}

	seenTested := map[string]struct{}{}
	for _, m := range testedPattern.FindAllStringSubmatch(output, -1) {
		result.TestedEndpoints = tools.AppendUnique(result.TestedEndpoints, seenTested, maxTestedEndpoints, m[1])
	}

	if len(result.VulnerableEndpoints) > 0 || strings.Contains(strings.ToLower(output), "vulnerable") {
		result.Vulnerable = true
	}

	return result
}

// Run executes one scan; non-zero exit is a ToolError carrying stderr.
func Run(ctx context.Context, req model.XSSRequest, opts Options, timeout time.Duration) (model.XSSResult, error) {
	res, err := execute(ctx, BuildArgs(req, opts), timeout)
	if err != nil {
		return model.XSSResult{}, err
	}
	if res.TimedOut {
		return model.XSSResult{}, tools.ErrTimeout
	}
	if !res.Succeeded {
		return model.XSSResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
