package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toolbridge/internal/executor"
)

func TestCheckAllAvailable(t *testing.T) {
	defer stubExecute(func([]string) (executor.Result, error) {
		return executor.Result{Succeeded: true}, nil
	})()

	targets := []Target{
		{Name: "nmap", Argv: []string{"nmap", "--version"}},
		{Name: "dig", Argv: []string{"dig", "-v"}},
	}
	got := Check(context.Background(), targets, time.Second)

	require.Equal(t, "healthy", got.Status)
	require.Equal(t, map[string]bool{"nmap": true, "dig": true}, got.Tools)
}

func TestCheckMissingToolDegrades(t *testing.T) {
	defer stubExecute(func(argv []string) (executor.Result, error) {
		if argv[0] == "wpscan" {
			return executor.Result{}, &executor.StartError{Command: "wpscan", Err: errors.New("not found")}
		}
		return executor.Result{Succeeded: true}, nil
	})()

	targets := []Target{
		{Name: "nmap", Argv: []string{"nmap", "--version"}},
		{Name: "wpscan", Argv: []string{"wpscan", "--version"}},
	}
	got := Check(context.Background(), targets, time.Second)

	require.Equal(t, "degraded", got.Status)
	require.False(t, got.Tools["wpscan"])
	require.True(t, got.Tools["nmap"])
}

func TestCheckTimedOutProbeIsUnavailable(t *testing.T) {
	defer stubExecute(func([]string) (executor.Result, error) {
		return executor.Result{TimedOut: true, ExitCode: -1}, nil
	})()

	got := Check(context.Background(), []Target{{Name: "nikto", Argv: []string{"nikto", "-Version"}}}, time.Second)

	require.Equal(t, "degraded", got.Status)
	require.False(t, got.Tools["nikto"])
}

func TestTargetsCoverAllTools(t *testing.T) {
	targets := Targets("python3")

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name)
	}
	require.ElementsMatch(t, []string{
		"nmap", "sqlmap", "nikto", "whatweb", "nslookup", "dig", "xsser", "wpscan",
	}, names)
}

func TestTargetsProbeInterpreterForXSS(t *testing.T) {
	for _, target := range Targets("/usr/bin/python3") {
		if target.Name == "xsser" {
			require.Equal(t, []string{"/usr/bin/python3", "--version"}, target.Argv)
			return
		}
	}
	t.Fatal("xsser probe missing")
}

func stubExecute(fn func(argv []string) (executor.Result, error)) func() {
	orig := execute
	execute = func(_ context.Context, argv []string, _ time.Duration) (executor.Result, error) {
		return fn(argv)
	}
	return func() { execute = orig }
}
