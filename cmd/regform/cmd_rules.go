package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/regform/pkg/validator"
)

type RulesCmd struct {
	flags *Flags
	kinds bool
}

func NewRulesCmd(flags *Flags) *RulesCmd {
	return &RulesCmd{flags: flags}
}

func (cmd *RulesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rules",
		Usage:     "Print the active ruleset as YAML",
		UsageText: "regform rules [options]",
		Description: `Prints the ruleset in the format accepted by --rules, so the built-in rules
can be used as a starting point for an override file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "kinds",
				Usage:       "list the supported check kinds and their default messages instead",
				Destination: &cmd.kinds,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *RulesCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer
	if cmd.kinds {
		for _, kind := range validator.Kinds() {
			fmt.Fprintf(w, "%-13s %s\n", kind, validator.DefaultMessage(kind))
		}
		return nil
	}

	rs, err := cmd.flags.Ruleset()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rs); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return enc.Close()
}
