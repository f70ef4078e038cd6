// Package probe reports per-tool readiness by running each tool's version
// probe under a short timeout. Probe failures of any kind mean unavailable,
// never an error.
package probe

import (
	"context"
	"sync"
	"time"

	"toolbridge/internal/executor"
)

type Status struct {
	Status string          `json:"status"`
	Tools  map[string]bool `json:"tools"`
}

// Target is one tool's lightweight version invocation.
type Target struct {
	Name string
	Argv []string
}

var execute = executor.Execute

// Targets lists the version probes for every known tool. The XSS scanner is
// a script, so its interpreter stands in for it.
func Targets(python string) []Target {
	return []Target{
		{Name: "nmap", Argv: []string{"nmap", "--version"}},
		{Name: "sqlmap", Argv: []string{"sqlmap", "--version"}},
		{Name: "nikto", Argv: []string{"nikto", "-Version"}},
		{Name: "whatweb", Argv: []string{"whatweb", "--version"}},
		{Name: "nslookup", Argv: []string{"nslookup", "-version"}},
		{Name: "dig", Argv: []string{"dig", "-v"}},
		{Name: "xsser", Argv: []string{python, "--version"}},
		{Name: "wpscan", Argv: []string{"wpscan", "--version"}},
	}
}

// Check probes every target concurrently, each bounded by timeout. A hung
// tool costs at most one timeout, not the whole health check.
func Check(ctx context.Context, targets []Target, timeout time.Duration) Status {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		tools = make(map[string]bool, len(targets))
	)

	for _, target := range targets {
		wg.Add(1)
		go func(target Target) {
			defer wg.Done()

			res, err := execute(ctx, target.Argv, timeout)
			available := err == nil && !res.TimedOut && res.Succeeded

			mu.Lock()
			tools[target.Name] = available
			mu.Unlock()
		}(target)
	}
	wg.Wait()

	status := "healthy"
	for _, available := range tools {
		if !available {
			status = "degraded"
			break
		}
	}

	return Status{Status: status, Tools: tools}
}
