// Package nmap adapts the nmap network scanner: argument construction,
// execution policy, and free-text output normalization.
package nmap

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

const Name = "nmap"

var execute = executor.Execute

// BuildArgs maps a validated request to the nmap argument vector. The target
// is always the final element.
func BuildArgs(req model.NmapRequest) []string {
	args := []string{"nmap"}

	switch req.ScanType {
	case "service":
		args = append(args, "-sV")
	case "vuln":
		args = append(args, "--script=vuln")
	case "full":
		args = append(args, "-sV", "-sC", "-A")
	}

	if req.Ports != "" {
		args = append(args, "-p", req.Ports)
	}

	return append(args, req.Target)
}

var (
	hostPattern = regexp.MustCompile(`Nmap scan report for (.+)`)
	portPattern = regexp.MustCompile(`(?m)^(\d+)/(\w+)\s+(\w+)\s+(.+)$`)
)

// Parse extracts the scanned host and its open-port table from nmap's
// human-readable output. Missing sections leave the defaults in place.
func Parse(output string) model.NmapResult {
	result := model.NmapResult{Hosts: []model.NmapHost{}}

	if m := hostPattern.FindStringSubmatch(output); m != nil {
		host := model.NmapHost{Host: strings.TrimSpace(m[1]), Ports: []model.NmapPort{}}

		for _, p := range portPattern.FindAllStringSubmatch(output, -1) {
			port, err := strconv.Atoi(p[1])
			if err != nil {
				continue
			}
			host.Ports = append(host.Ports, model.NmapPort{
				Port:     port,
				Protocol: p[2],
				State:    p[3],
				Service:  strings.TrimSpace(p[4]),
			})
		}

		result.Hosts = append(result.Hosts, host)
	}

	if strings.Contains(output, "Host is up") {
		result.Summary.Status = "up"
	}

	return result
}

// Run executes one scan. Non-zero exit is surfaced as a ToolError with
// stderr attached; the parser only sees output from clean exits.
func Run(ctx context.Context, req model.NmapRequest, timeout time.Duration) (model.NmapResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.NmapResult{}, err
	}
	if res.TimedOut {
		return model.NmapResult{}, tools.ErrTimeout
	}
	if !res.Succeeded {
		return model.NmapResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
