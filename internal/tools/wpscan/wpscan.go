// Package wpscan adapts the wpscan WordPress scanner. The tool is asked for
// its native JSON report; when that decodes cleanly it is the source of
// truth, otherwise a set of text heuristics extracts what it can.
package wpscan

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"time"

	"toolbridge/internal/executor"
	"toolbridge/internal/model"
	"toolbridge/internal/tools"
)

const Name = "wpscan"

var execute = executor.Execute

// BuildArgs maps a validated request to the wpscan argument vector.
// Enumeration categories are comma-joined into one --enumerate value.
func BuildArgs(req model.WPScanRequest) []string {
	args := []string{"wpscan", "--url", req.URL, "--format", "json", "--no-banner"}

	if req.Aggressive {
		args = append(args, "--plugins-detection", "aggressive")
	}

	args = append(args, "--enumerate", strings.Join(req.Enumerate, ","))

	if req.APIToken != "" {
		args = append(args, "--api-token", req.APIToken)
	}

	return args
}

const (
	maxVulnerabilities = 10
	maxPlugins         = 10
	maxUsers           = 10
)

// Shapes from wpscan's JSON report; unknown fields are ignored.
type jsonReport struct {
	ScanAborted string `json:"scan_aborted"`
	Version     *struct {
		Number          string     `json:"number"`
		Vulnerabilities []jsonVuln `json:"vulnerabilities"`
	} `json:"version"`
	Plugins map[string]struct {
		Version *struct {
			Number string `json:"number"`
		} `json:"version"`
		Vulnerabilities []jsonVuln `json:"vulnerabilities"`
	} `json:"plugins"`
	Users map[string]json.RawMessage `json:"users"`
}

type jsonVuln struct {
	Title string `json:"title"`
}

var (
	versionPattern  = regexp.MustCompile(`(?i)WordPress version (\d+[\w.]*)`)
	vulnLinePattern = regexp.MustCompile(`(?m)^.*\[!\].*$`)
	pluginPattern   = regexp.MustCompile(`(?i)wp-content/plugins/([a-z0-9_-]+)`)
	userLinePattern = regexp.MustCompile(`^\[\+\]\s+(\S+)$`)
)

// Parse prefers the whole-document JSON report and falls back to text
// extraction when the document is absent or malformed. ParsedJSON records
// which path produced the fields.
func Parse(output string) model.WPScanResult {
	if result, ok := parseJSON(output); ok {
		return result
	}
	return parseText(output)
}

func parseJSON(output string) (model.WPScanResult, bool) {
	trimmed := strings.TrimSpace(output)
	if !strings.HasPrefix(trimmed, "{") {
		return model.WPScanResult{}, false
	}

	var report jsonReport
	if err := json.Unmarshal([]byte(trimmed), &report); err != nil {
		return model.WPScanResult{}, false
	}

	result := newResult()
	result.ParsedJSON = true
	result.WordPressDetected = report.ScanAborted == ""

	if report.Version != nil {
		result.Version = report.Version.Number
		for _, v := range report.Version.Vulnerabilities {
			result.Vulnerabilities = appendCapped(result.Vulnerabilities, maxVulnerabilities, v.Title)
		}
	}

	for _, name := range sortedKeys(report.Plugins) {
		if len(result.Plugins) >= maxPlugins {
			break
		}
		plugin := model.WPPlugin{Name: name}
		entry := report.Plugins[name]
		if entry.Version != nil {
			plugin.Version = entry.Version.Number
		}
		result.Plugins = append(result.Plugins, plugin)

		for _, v := range entry.Vulnerabilities {
			result.Vulnerabilities = appendCapped(result.Vulnerabilities, maxVulnerabilities, v.Title)
		}
	}

	for _, name := range sortedKeys(report.Users) {
		result.Users = appendCapped(result.Users, maxUsers, name)
	}

	fillSummary(&result)
	return result, true
}

func parseText(output string) model.WPScanResult {
	result := newResult()

	if m := versionPattern.FindStringSubmatch(output); m != nil {
		result.Version = m[1]
	}
	if result.Version != "" || strings.Contains(strings.ToLower(output), "wordpress") {
		result.WordPressDetected = true
	}

	for _, line := range vulnLinePattern.FindAllString(output, -1) {
		result.Vulnerabilities = appendCapped(result.Vulnerabilities, maxVulnerabilities, strings.TrimSpace(line))
	}

	seenPlugins := map[string]struct{}{}
	for _, m := range pluginPattern.FindAllStringSubmatch(output, -1) {
		name := strings.ToLower(m[1])
		if _, ok := seenPlugins[name]; ok || len(result.Plugins) >= maxPlugins {
			continue
		}
		seenPlugins[name] = struct{}{}
		result.Plugins = append(result.Plugins, model.WPPlugin{Name: name})
	}

	// Usernames only appear under the identified-users section; matching
	// [+] lines globally would pick up every headline.
	seenUsers := map[string]struct{}{}
	inUserSection := false
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "User(s) Identified") {
			inUserSection = true
			continue
		}
		if !inUserSection {
			continue
		}
		if m := userLinePattern.FindStringSubmatch(line); m != nil {
			result.Users = tools.AppendUnique(result.Users, seenUsers, maxUsers, m[1])
		}
	}

	fillSummary(&result)
	return result
}

func newResult() model.WPScanResult {
	return model.WPScanResult{
		Vulnerabilities: []string{},
		Plugins:         []model.WPPlugin{},
		Users:           []string{},
	}
}

func fillSummary(r *model.WPScanResult) {
	r.Summary = model.WPScanSummary{
		VulnerabilityCount: len(r.Vulnerabilities),
		PluginCount:        len(r.Plugins),
		UserCount:          len(r.Users),
	}
}

func appendCapped(list []string, limit int, value string) []string {
	if value == "" || len(list) >= limit {
		return list
	}
	return append(list, value)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Run executes one scan. wpscan often emits a complete JSON report before
// exiting non-zero, so any non-empty stdout is parsed; only an empty capture
// on failure surfaces as a ToolError.
func Run(ctx context.Context, req model.WPScanRequest, timeout time.Duration) (model.WPScanResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.WPScanResult{}, err
	}
	if res.TimedOut {
		return model.WPScanResult{}, tools.ErrTimeout
	}
	if !res.Succeeded && strings.TrimSpace(res.Stdout) == "" {
		return model.WPScanResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
