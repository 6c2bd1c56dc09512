package main

import (
	"fmt"

	"github.com/jsontree/go-jsontree"
	"github.com/jsontree/go-jsontree/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	p, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args[1:]) {
		doc, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var res ir.Handle
		if cfg.Merge {
			res, err = jsontree.MergePatch(doc, p)
		} else {
			res, err = jsontree.ApplyPatch(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
