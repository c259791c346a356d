package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// ErrNotInteractive is returned when fill runs without a terminal.
var ErrNotInteractive = errors.New("fill needs an interactive terminal; use 'regform check' for piped input")

type FillCmd struct {
	flags   *Flags
	prefill bool
	format  string
}

func NewFillCmd(flags *Flags) *FillCmd {
	return &FillCmd{flags: flags}
}

func (cmd *FillCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fill",
		Usage:     "Fill the registration form in the terminal",
		UsageText: "regform fill [options]",
		Description: `Prompts for every field with the same rules as the web form. Each input is
checked as you leave it. The accepted record is printed with passwords
redacted.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "prefill",
				Usage:       "start from the sample values",
				Destination: &cmd.prefill,
			},
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

func (cmd *FillCmd) run(ctx context.Context, c *cli.Command) error {
	rs, err := cmd.flags.FormRuleset()
	if err != nil {
		return err
	}

	in, ok := c.Root().Reader.(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return ErrNotInteractive
	}

	form := registration.EmptyForm()
	if cmd.prefill {
		form = registration.SampleForm()
	}
	values := form.Record()

	f := buildFillForm(rs, values).WithInput(in)
	if err := f.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			printer{w: c.Root().Writer}.Mutedf("aborted")
			return nil
		}
		return err
	}

	for _, field := range registration.Inputs() {
		values[field.Name] = f.GetString(field.Name)
	}

	// Fields are checked one at a time while typing; a later edit can still
	// invalidate an earlier field, e.g. the password after its confirmation.
	res := rs.Validate(values)
	filled := registration.FormFromRecord(values)
	return cmd.report(c, filled, res)
}

func (cmd *FillCmd) report(c *cli.Command, form registration.Form, res validator.Result) error {
	w := c.Root().Writer
	if cmd.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newCheckResult("terminal", res)); err != nil {
			return err
		}
		if !res.IsValid() {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer{w: w}
	if !res.IsValid() {
		for _, field := range res.Invalid() {
			p.Errorf("%s: %s", field, res.Message(field))
		}
		return cli.Exit("", 1)
	}

	p.Successf("Registration valid for %s <%s>", form.FullName, form.Email)
	redacted := form.Redacted()
	for _, field := range registration.FieldNames() {
		p.Mutedf("  %s: %s", field, redacted[field])
	}
	return nil
}

// buildFillForm creates one input per field in display order. Validation
// writes each input into values so cross-field checks see the latest input.
func buildFillForm(rs *validator.Ruleset, values validator.Record) *huh.Form {
	fields := make([]huh.Field, 0, len(registration.Inputs()))
	for _, in := range registration.Inputs() {
		name := in.Name
		value := new(string)
		*value = values[name]

		input := huh.NewInput().
			Key(name).
			Title(fieldTitle(rs, name)).
			Placeholder(in.Placeholder).
			Value(value).
			Validate(func(s string) error {
				values[name] = s
				if msg, ok := rs.ValidateField(values, name); !ok {
					return errors.New(msg)
				}
				return nil
			})
		if in.Type == "password" {
			input = input.EchoMode(huh.EchoModePassword)
		}
		fields = append(fields, input)
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

// fieldTitle capitalizes the field label, e.g. "confirm password" becomes
// "Confirm password".
func fieldTitle(rs *validator.Ruleset, field string) string {
	rule, ok := rs.Rule(field)
	if !ok || rule.Label == "" {
		return field
	}
	r, size := utf8.DecodeRuneInString(rule.Label)
	return string(unicode.ToUpper(r)) + rule.Label[size:]
}
