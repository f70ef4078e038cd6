// Package sqlmap adapts the sqlmap SQL-injection scanner.
package sqlmap

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

const Name = "sqlmap"

var execute = executor.Execute

// BuildArgs maps a validated request to the sqlmap argument vector. Batch
// mode is always on so the tool never waits for interactive answers.
func BuildArgs(req model.SqlmapRequest) []string {
	args := []string{"sqlmap", "-u", req.URL, "--batch", "--answers=crack=N"}

	if req.Data != "" {
		args = append(args, "--data", req.Data)
	}
	if req.Cookie != "" {
		args = append(args, "--cookie", req.Cookie)
	}

	return append(args,
		"--level", strconv.Itoa(req.Level),
		"--risk", strconv.Itoa(req.Risk),
	)
}

var (
	injectionPattern = regexp.MustCompile(`Parameter: (.+?) \((.+?)\)`)
	databasesPattern = regexp.MustCompile(`(?s)available databases \[\d+\]:(.*?)(?:\n\n|$)`)
	databasePattern  = regexp.MustCompile(`\[\*\] (.+)`)
)

// Parse flags injectability from marker substrings and extracts injection
// points plus the enumerated database list.
func Parse(output string) model.SqlmapResult {
	result := model.SqlmapResult{
		InjectionPoints: []model.InjectionPoint{},
		Databases:       []string{},
	}

	lower := strings.ToLower(output)
	if strings.Contains(lower, "is vulnerable") || strings.Contains(lower, "injectable") {
		result.Vulnerable = true
	}

	for _, m := range injectionPattern.FindAllStringSubmatch(output, -1) {
		result.InjectionPoints = append(result.InjectionPoints, model.InjectionPoint{
			Parameter: m[1],
			Type:      m[2],
		})
	}

	if block := databasesPattern.FindStringSubmatch(output); block != nil {
		for _, db := range databasePattern.FindAllStringSubmatch(block[1], -1) {
			result.Databases = append(result.Databases, strings.TrimSpace(db[1]))
		}
	}

	return result
}

// Run executes one scan; non-zero exit is a ToolError carrying stderr.
func Run(ctx context.Context, req model.SqlmapRequest, timeout time.Duration) (model.SqlmapResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.SqlmapResult{}, err
	}
	if res.TimedOut {
		return model.SqlmapResult{}, tools.ErrTimeout
	}
	if !res.Succeeded {
		return model.SqlmapResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
