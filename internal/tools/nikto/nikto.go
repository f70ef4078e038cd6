// Package nikto adapts the nikto web-server scanner.
package nikto

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

const Name = "nikto"

var execute = executor.Execute

// BuildArgs maps a validated request to the nikto argument vector with the
// fixed plain-text report format.
func BuildArgs(req model.NiktoRequest) []string {
	args := []string{"nikto", "-h", req.Target, "-p", strconv.Itoa(req.Port)}

	if req.SSL {
		args = append(args, "-ssl")
	}

	return append(args, "-Format", "txt")
}

var (
	targetPattern  = regexp.MustCompile(`Testing: (.+)`)
	serverPattern  = regexp.MustCompile(`Server: (.+)`)
	findingPattern = regexp.MustCompile(`\+ (.+)`)
)

// Parse extracts the tested target, the server banner, and every finding
// line (nikto prefixes findings with "+").
func Parse(output string) model.NiktoResult {
	result := model.NiktoResult{Findings: []string{}}

	if m := targetPattern.FindStringSubmatch(output); m != nil {
		result.Target = strings.TrimSpace(m[1])
	}
	if m := serverPattern.FindStringSubmatch(output); m != nil {
		result.ServerInfo.Server = strings.TrimSpace(m[1])
	}
	for _, m := range findingPattern.FindAllStringSubmatch(output, -1) {
		result.Findings = append(result.Findings, strings.TrimSpace(m[1]))
	}

	return result
}

// Run executes one scan; non-zero exit is a ToolError carrying stderr.
func Run(ctx context.Context, req model.NiktoRequest, timeout time.Duration) (model.NiktoResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.NiktoResult{}, err
	}
	if res.TimedOut {
		return model.NiktoResult{}, tools.ErrTimeout
	}
	if !res.Succeeded {
		return model.NiktoResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
