package main

import (
	"fmt"

	"github.com/jsontree/go-jsontree"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	a, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a.Equal(b) {
		return nil
	}
	if cfg.Quiet {
		return cli.ExitCodeErr(1)
	}
	if cfg.Tree {
		d, _ := jsontree.DiffTree(a, b)
		if err := writeDoc(cfg.MainConfig, cc.Out, d); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	text, err := jsontree.DiffText(a, b)
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write([]byte(text)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
