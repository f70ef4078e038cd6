// Package tools holds what the per-tool adapter packages share: the failure
// taxonomy applied after execution and small parsing helpers.
package tools

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a scan whose subprocess exceeded its allotted time.
// The boundary maps it to a request-timeout status.
var ErrTimeout = errors.New("tool execution timed out")

// ToolError means the tool ran and exited with a code its policy treats as
// failure. Stderr is the diagnostic payload shown to the caller.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

// AppendUnique appends value to list unless already seen or the cap is
// reached. A limit of 0 means unbounded.
func AppendUnique(list []string, seen map[string]struct{}, limit int, value string) []string {
	if value == "" {
		return list
	}
	if _, ok := seen[value]; ok {
		return list
	}
	if limit > 0 && len(list) >= limit {
		return list
	}
	seen[value] = struct{}{}
	return append(list, value)
}
