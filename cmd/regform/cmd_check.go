package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// ErrNoInput is returned when check has neither files nor piped input.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); pass record files or pipe YAML/JSON")

type CheckCmd struct {
	flags  *Flags
	format string
}

func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate record files",
		UsageText: "regform check [options] [FILE...]",
		Description: `Validates registration records read from YAML or JSON files, or from stdin
when no file is given. A file holds one record (a mapping of field names to
values) or a list of records. Exits with status 1 if any record is invalid.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

// checkResult is one validated record.
type checkResult struct {
	Source string            `json:"source"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`

	errs validator.ValidationErrors
}

func newCheckResult(source string, res validator.Result) checkResult {
	r := checkResult{Source: source, Valid: true}
	r.errs = validator.ExtractValidationErrors(res.Err())
	if len(r.errs) > 0 {
		r.Valid = false
		r.Errors = make(map[string]string, len(r.errs))
		for _, e := range r.errs {
			r.Errors[e.Field] = e.Message
		}
	}
	return r
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.format != "text" && cmd.format != "json" {
		return fmt.Errorf("unknown format %q: must be text or json", cmd.format)
	}

	rs, err := cmd.flags.Ruleset()
	if err != nil {
		return err
	}

	var results []checkResult
	if c.Args().Len() == 0 {
		if f, ok := c.Root().Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return ErrNoInput
		}
		recs, err := readRecords(c.Root().Reader)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		results = append(results, checkRecords(rs, "stdin", recs)...)
	}
	for _, path := range c.Args().Slice() {
		recs, err := readRecordFile(path)
		if err != nil {
			return err
		}
		results = append(results, checkRecords(rs, path, recs)...)
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		printResults(printer{w: w}, results)
	}

	for _, r := range results {
		if !r.Valid {
			return cli.Exit("", 1)
		}
	}
	return nil
}

func checkRecords(rs *validator.Ruleset, source string, recs []validator.Record) []checkResult {
	results := make([]checkResult, 0, len(recs))
	for i, rec := range recs {
		name := source
		if len(recs) > 1 {
			name = fmt.Sprintf("%s[%d]", source, i)
		}
		results = append(results, newCheckResult(name, rs.Validate(rec)))
	}
	return results
}

func printResults(p printer, results []checkResult) {
	invalid := 0
	for _, r := range results {
		if r.Valid {
			p.Successf("%s", r.Source)
			continue
		}
		invalid++
		p.Errorf("%s", r.Source)
		for _, field := range r.errs.Fields() {
			p.Printf("  %s: %s", field, r.errs.Get(field))
		}
	}
	p.Printf("")
	if invalid == 0 {
		p.Successf("%d record(s) valid", len(results))
		return
	}
	p.Errorf("%d of %d record(s) invalid", invalid, len(results))
}

func readRecordFile(path string) ([]validator.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer func() { _ = f.Close() }()

	recs, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// readRecords decodes a single record or a list of records. JSON input is
// read through the YAML decoder. Scalar values such as `age: 40` are kept as
// their literal text.
func readRecords(r io.Reader) ([]validator.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input")
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.MappingNode:
		var rec validator.Record
		if err := root.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		return []validator.Record{rec}, nil
	case yaml.SequenceNode:
		var recs []validator.Record
		if err := root.Decode(&recs); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return recs, nil
	default:
		return nil, fmt.Errorf("decode records: expected a mapping or a list, got %s", root.ShortTag())
	}
}
