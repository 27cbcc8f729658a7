package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func defaultConfig() Config {
	return Config{LogLevel: "info", LogFormat: "json"}
}

func runWith(t *testing.T, cfg Config, args []string, input string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), cfg, args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCourseRules(t *testing.T) {
	reg, err := courseRules("")
	require.NoError(t, err)

	assert.Equal(t, []validator.Kind{validator.KindRequired, validator.KindMaxLength}, reg.Rules("title"))
	assert.Equal(t, []validator.Kind{validator.KindRequired, validator.KindPositive}, reg.Rules("price"))

	price := 1.0
	assert.True(t, reg.Validate(ruleset.Struct(Course{Title: "abcd", Price: &price})))
}

func TestRun_Stdin(t *testing.T) {
	input := `
- {title: abcd, price: 1}
- {title: abcdef, price: 1}
- {title: abcd, price: -1}
- {title: "", price: 1}
- {title: abcd}
`
	code, out, _ := runWith(t, defaultConfig(), nil, input)

	assert.Equal(t, exitInvalid, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#1 valid", lines[0])
	assert.Equal(t, "#2 invalid: title: must be shorter than 5 characters", lines[1])
	assert.Equal(t, "#3 invalid: price: must be a positive number", lines[2])
	assert.Equal(t, "#4 invalid: title: field is required", lines[3])
	assert.Equal(t, "#5 invalid: price: field is required; price: must be a positive number", lines[4])
}

func TestRun_AllValid(t *testing.T) {
	code, out, _ := runWith(t, defaultConfig(), []string{"-"}, `[{"title": "Go", "price": 9.5}]`)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "#1 valid\n", out)
}

func TestRun_EmptyInput(t *testing.T) {
	code, out, _ := runWith(t, defaultConfig(), nil, "")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
}

func TestRun_BindError(t *testing.T) {
	code, out, _ := runWith(t, defaultConfig(), nil, "- {title: abcd, price: cheap}\n")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, "#1 invalid: invalid form data")
}

func TestRun_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: abcd\n  price: 2\n"), 0o600))

	code, out, _ := runWith(t, defaultConfig(), []string{path}, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "#1 valid\n", out)

	code, _, errOut := runWith(t, defaultConfig(), []string{filepath.Join(dir, "missing.yaml")}, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "missing.yaml")
}

func TestRun_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("price: [positive]\n"), 0o600))

	cfg := defaultConfig()
	cfg.RulesFile = path

	code, out, _ := runWith(t, cfg, nil, "- {title: a very long title, price: 3}\n")
	assert.Equal(t, exitOK, code, "the rule table replaces the struct tag rules")
	assert.Equal(t, "#1 valid\n", out)

	require.NoError(t, os.WriteFile(path, []byte("price: [cheap]\n"), 0o600))
	code, _, errOut := runWith(t, cfg, nil, "[]")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown rule kind")
}

func TestRun_Usage(t *testing.T) {
	code, out, _ := runWith(t, defaultConfig(), []string{"--help"}, "")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "usage: coursecheck")

	code, _, errOut := runWith(t, defaultConfig(), []string{"a", "b"}, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "usage: coursecheck")
}

func TestRun_BadInput(t *testing.T) {
	code, _, errOut := runWith(t, defaultConfig(), nil, "title: abcd\n")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "decode records")
}

func TestRun_BadLogConfig(t *testing.T) {
	code, _, errOut := runWith(t, Config{LogLevel: "loud", LogFormat: "text"}, nil, "[]")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "invalid log level")

	code, _, errOut = runWith(t, Config{LogLevel: "info", LogFormat: "xml"}, nil, "[]")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "invalid log format")
}

func TestRun_LogsCarryRunID(t *testing.T) {
	code, _, errOut := runWith(t, defaultConfig(), nil, "- {title: abcdef, price: 1}\n")
	require.Equal(t, exitInvalid, code)

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.Len(t, lines, 2)

	var runID string
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "coursecheck", entry["service"])
		id, _ := entry["run_id"].(string)
		require.NotEmpty(t, id)
		if runID == "" {
			runID = id
		}
		assert.Equal(t, runID, id)
	}
}
