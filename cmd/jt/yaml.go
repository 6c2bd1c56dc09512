package main

import (
	"fmt"

	"github.com/jsontree/go-jsontree"

	"github.com/scott-cotton/cli"
)

func yamlCmd(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		if cfg.To {
			h, err := loadArg(cfg.MainConfig, arg)
			if err != nil {
				return err
			}
			d, err := jsontree.ToYAML(h)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		h, err := jsontree.FromYAML(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, h); err != nil {
			return err
		}
	}
	return nil
}
