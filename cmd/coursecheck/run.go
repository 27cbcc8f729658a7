package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/binder"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const usage = `usage: coursecheck [file]

Validates a YAML or JSON list of course records read from file or stdin.

environment:
  LOG_LEVEL   debug|info|warn|error (default info)
  LOG_FORMAT  text|json (default text)
  RULES_FILE  rule table replacing the built-in course rules
`

// Config is read from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	RulesFile string `env:"RULES_FILE"`
}

type runIDKey struct{}

func run(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	if len(args) > 1 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "coursecheck: %v\n", err)
		return exitUsage
	}
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	reg, err := courseRules(cfg.RulesFile, ruleset.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "cannot build rules", logger.Error(err))
		fmt.Fprintf(stderr, "coursecheck: %v\n", err)
		return exitUsage
	}

	in := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "coursecheck: %v\n", err)
			return exitUsage
		}
		defer f.Close()
		in = f
	}

	docs, err := decodeRecords(in)
	if err != nil {
		log.ErrorContext(ctx, "cannot decode records", logger.Error(err))
		fmt.Fprintf(stderr, "coursecheck: %v\n", err)
		return exitUsage
	}

	invalid := 0
	for i, doc := range docs {
		n := i + 1
		if err := checkCourse(ctx, reg, doc); err != nil {
			invalid++
			log.InfoContext(ctx, "record rejected", logger.Record(n), logger.Error(err))
			fmt.Fprintf(stdout, "#%d invalid: %s\n", n, describe(err))
			continue
		}
		fmt.Fprintf(stdout, "#%d valid\n", n)
	}

	log.InfoContext(ctx, "records checked", slog.Int("total", len(docs)), slog.Int("invalid", invalid))
	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// checkCourse binds doc the way a form submission is bound and validates the result.
func checkCourse(ctx context.Context, reg *ruleset.Registry, doc map[string]any) error {
	var c Course
	if err := binder.Values(binder.Flatten(doc), &c); err != nil {
		return err
	}
	return reg.CheckContext(ctx, ruleset.Struct(c))
}

func decodeRecords(r io.Reader) ([]map[string]any, error) {
	var docs []map[string]any
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return docs, nil
}

func describe(err error) string {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, v := range verrs {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format := logger.Format(strings.ToLower(cfg.LogFormat))
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithAttr(slog.String("service", "coursecheck")),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}
