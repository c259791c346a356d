package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// Flags holds values shared by every command.
type Flags struct {
	RulesFile string
}

// Ruleset returns the ruleset from --rules, or the built-in registration
// rules when no file is set.
func (f *Flags) Ruleset() (*validator.Ruleset, error) {
	if f.RulesFile == "" {
		return registration.Ruleset(), nil
	}
	rs, err := validator.LoadRulesetFile(f.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rs, nil
}

// FormRuleset is Ruleset for commands that render the registration form. The
// ruleset must declare exactly the form fields.
func (f *Flags) FormRuleset() (*validator.Ruleset, error) {
	rs, err := f.Ruleset()
	if err != nil {
		return nil, err
	}
	if err := registration.CheckRuleset(rs); err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rs, nil
}

func newApp() *cli.Command {
	flags := &Flags{}

	app := &cli.Command{
		Name:      "regform",
		Usage:     "Serve and check the registration form",
		UsageText: "regform [global options] command [command options]",
		Description: `regform validates sign-up records against a declarative ruleset.

Run 'regform serve' to start the web form, 'regform check' to validate record
files, 'regform fill' to fill the form in the terminal and 'regform rules' to
print the active ruleset.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "rules",
				Aliases:     []string{"r"},
				Usage:       "path to a YAML ruleset replacing the built-in registration rules",
				Sources:     cli.EnvVars("REGFORM_RULESET_FILE"),
				Destination: &flags.RulesFile,
			},
		},
	}

	app = NewServeCmd(flags).Register(app)
	app = NewCheckCmd(flags).Register(app)
	app = NewFillCmd(flags).Register(app)
	app = NewRulesCmd(flags).Register(app)

	return app
}
