package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendUniqueDeduplicates(t *testing.T) {
	seen := map[string]struct{}{}
	list := []string{}

	list = AppendUnique(list, seen, 0, "a")
	list = AppendUnique(list, seen, 0, "b")
	list = AppendUnique(list, seen, 0, "a")

	require.Equal(t, []string{"a", "b"}, list)
}

func TestAppendUniqueRespectsCap(t *testing.T) {
	seen := map[string]struct{}{}
	list := []string{}

	for _, v := range []string{"a", "b", "c", "d"} {
		list = AppendUnique(list, seen, 2, v)
	}

	require.Equal(t, []string{"a", "b"}, list)
}

func TestAppendUniqueSkipsEmpty(t *testing.T) {
	seen := map[string]struct{}{}
	list := AppendUnique([]string{}, seen, 0, "")
	require.Empty(t, list)
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{Tool: "nmap", ExitCode: 1, Stderr: "boom"}
	require.Equal(t, "nmap exited with code 1", err.Error())
}
