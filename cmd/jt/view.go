package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		h, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, h); err != nil {
			return err
		}
	}
	return nil
}
