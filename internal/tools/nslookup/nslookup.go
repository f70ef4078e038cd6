// Package nslookup adapts the basic DNS lookup utility. nslookup exits 1 for
// "name not found" while still printing usable output, so that code counts
// as a completion.
package nslookup

import (
	"context"
	"regexp"
	"strings"
	"time"

	"toolbridge/internal/executor"
	"toolbridge/internal/model"
	"toolbridge/internal/tools"
)

const Name = "nslookup"

var execute = executor.Execute

// BuildArgs maps a validated request to the nslookup argument vector. The
// query type flag is omitted when unset so the tool keeps its own default.
func BuildArgs(req model.NslookupRequest) []string {
	args := []string{"nslookup"}

	if req.RecordType != "" {
		args = append(args, "-type="+req.RecordType)
	}

	args = append(args, req.Domain)

	if req.Nameserver != "" {
		args = append(args, req.Nameserver)
	}

	return args
}

var (
	serverPattern  = regexp.MustCompile(`Server:\s+(.+)`)
	addressPattern = regexp.MustCompile(`Address:\s+(.+)`)
	namePattern    = regexp.MustCompile(`Name:\s+(.+)`)
)

// Parse extracts the responding server, every address line, and every Name:
// record line.
func Parse(output string) model.NslookupResult {
	result := model.NslookupResult{
		Addresses: []string{},
		Names:     []string{},
	}

	if m := serverPattern.FindStringSubmatch(output); m != nil {
		result.Server = strings.TrimSpace(m[1])
	}
	for _, m := range addressPattern.FindAllStringSubmatch(output, -1) {
		result.Addresses = append(result.Addresses, strings.TrimSpace(m[1]))
	}
	for _, m := range namePattern.FindAllStringSubmatch(output, -1) {
		result.Names = append(result.Names, strings.TrimSpace(m[1]))
	}

	return result
}

// Run executes one lookup. Exit codes 0 and 1 are both completions; anything
// higher is a ToolError.
func Run(ctx context.Context, req model.NslookupRequest, timeout time.Duration) (model.NslookupResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.NslookupResult{}, err
	}
	if res.TimedOut {
		return model.NslookupResult{}, tools.ErrTimeout
	}
	if !res.Succeeded && res.ExitCode != 1 {
		return model.NslookupResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
