package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsontree/go-jsontree"
	"github.com/jsontree/go-jsontree/ir"

	"github.com/scott-cotton/cli"
)

func jtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads arg as a file path, or stdin for "-".
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func loadArg(cfg *MainConfig, arg string) (ir.Handle, error) {
	d, err := readArg(arg)
	if err != nil {
		return ir.Handle{}, err
	}
	h, err := jsontree.LoadBytes(d, cfg.parseOpts()...)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return h, nil
}

// stdinIfEmpty makes bare invocations read a single document from
// stdin.
func stdinIfEmpty(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeDoc(cfg *MainConfig, w io.Writer, h ir.Handle) error {
	if err := jsontree.Dump(h, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
