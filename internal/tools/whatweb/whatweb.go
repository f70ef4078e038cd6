// Package whatweb adapts the whatweb fingerprinting tool. The tool emits one
// JSON object per line on stdout; decoding is all-or-nothing so a partially
// readable report is never silently truncated.
package whatweb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"toolbridge/internal/executor"
	"toolbridge/internal/model"
	"toolbridge/internal/tools"
)

const Name = "whatweb"

var execute = executor.Execute

// BuildArgs maps a validated request to the whatweb argument vector. The
// aggression flag is attached to the level as whatweb expects (-a3).
func BuildArgs(req model.WhatwebRequest) []string {
	return []string{"whatweb", req.Target, "--log-json=-", fmt.Sprintf("-a%d", req.Aggression)}
}

// Parse decodes newline-delimited JSON objects. If any non-blank line fails
// to decode the whole call degrades to an empty result list with ParseError
// set, never an error.
func Parse(output string) model.WhatwebResult {
	result := model.WhatwebResult{Results: []map[string]any{}}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return model.WhatwebResult{Results: []map[string]any{}, ParseError: true}
		}
		result.Results = append(result.Results, obj)
	}

	return result
}

// Run executes one scan. whatweb may emit usable JSON before exiting
// non-zero, so any non-empty stdout is parsed; only an empty capture on
// failure surfaces as a ToolError.
func Run(ctx context.Context, req model.WhatwebRequest, timeout time.Duration) (model.WhatwebResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.WhatwebResult{}, err
	}
	if res.TimedOut {
		return model.WhatwebResult{}, tools.ErrTimeout
	}
	if !res.Succeeded && strings.TrimSpace(res.Stdout) == "" {
		return model.WhatwebResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	out := Parse(res.Stdout)
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
