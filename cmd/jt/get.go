package main

import (
	"fmt"

	"github.com/jsontree/go-jsontree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a query expression", cli.ErrUsage)
	}
	query := args[0]
	for _, arg := range stdinIfEmpty(args[1:]) {
		h, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := jsontree.Query(h, query)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, query, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
