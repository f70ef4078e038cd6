// Package dig adapts the dig DNS utility. Normal output is parsed by
// section; +short output is a bare record list and bypasses the structured
// parser entirely.
package dig

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

const Name = "dig"

var execute = executor.Execute

// BuildArgs maps a validated request to the dig argument vector:
// dig [@nameserver] domain type [+short].
func BuildArgs(req model.DigRequest) []string {
	args := []string{"dig"}

	if req.Nameserver != "" {
		args = append(args, "@"+req.Nameserver)
	}

	args = append(args, req.Domain, req.RecordType)

	if req.Short {
		args = append(args, "+short")
	}

	return args
}

var (
	queryTimePattern = regexp.MustCompile(`;; Query time: (\d+) msec`)
	serverPattern    = regexp.MustCompile(`;; SERVER: (.+)`)
)

const (
	questionHeader = ";; QUESTION SECTION:"
	answerHeader   = ";; ANSWER SECTION:"
)

// Parse extracts the question triplet, the answer rows, the query time, and
// the responding server from full dig output. Answer rows need at least 5
// whitespace-separated columns; everything from the 5th on joins into Data.
func Parse(output string) model.DigResult {
	result := model.DigResult{Answers: []model.DigAnswer{}}

	lines := strings.Split(output, "\n")
	for i := 0; i < len(lines); i++ {
		switch strings.TrimSpace(lines[i]) {
		case questionHeader:
			if i+1 < len(lines) {
				if q := parseQuestion(lines[i+1]); q != nil {
					result.Question = q
				}
			}
		case answerHeader:
			for j := i + 1; j < len(lines); j++ {
				row := strings.TrimSpace(lines[j])
				if row == "" || strings.HasPrefix(row, ";") {
					break
				}
				if a, ok := parseAnswer(row); ok {
					result.Answers = append(result.Answers, a)
				}
			}
		}
	}

	if m := queryTimePattern.FindStringSubmatch(output); m != nil {
		result.QueryTimeMs, _ = strconv.Atoi(m[1])
	}
	if m := serverPattern.FindStringSubmatch(output); m != nil {
		result.Server = strings.TrimSpace(m[1])
	}

	return result
}

func parseQuestion(line string) *model.DigQuestion {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ";"))
	if len(fields) < 3 {
		return nil
	}
	return &model.DigQuestion{Name: fields[0], Class: fields[1], Type: fields[2]}
}

func parseAnswer(line string) (model.DigAnswer, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return model.DigAnswer{}, false
	}
	ttl, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.DigAnswer{}, false
	}
	return model.DigAnswer{
		Name:  fields[0],
		TTL:   ttl,
		Class: fields[2],
		Type:  fields[3],
		Data:  strings.Join(fields[4:], " "),
	}, true
}

// ParseShort returns the trimmed non-empty lines of +short output verbatim.
func ParseShort(output string) model.DigResult {
	result := model.DigResult{Answers: []model.DigAnswer{}, ShortOutput: []string{}}

	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result.ShortOutput = append(result.ShortOutput, line)
		}
	}

	return result
}

// Run executes one lookup; non-zero exit is a ToolError carrying stderr.
func Run(ctx context.Context, req model.DigRequest, timeout time.Duration) (model.DigResult, error) {
	res, err := execute(ctx, BuildArgs(req), timeout)
	if err != nil {
		return model.DigResult{}, err
	}
	if res.TimedOut {
		return model.DigResult{}, tools.ErrTimeout
	}
	if !res.Succeeded {
		return model.DigResult{}, &tools.ToolError{Tool: Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	var out model.DigResult
	if req.Short {
		out = ParseShort(res.Stdout)
	} else {
		out = Parse(res.Stdout)
	}
	out.RawOutput = res.Stdout
	out.RawStderr = res.Stderr
	return out, nil
}
