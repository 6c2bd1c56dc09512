package jsontree

import (
	"fmt"

	"github.com/jsontree/go-jsontree/debug"
	"github.com/jsontree/go-jsontree/ir"

	"github.com/expr-lang/expr"
)

// Query compiles src as an expr-lang expression and evaluates it with
// doc's entries as the environment, so object keys are referenced
// directly ("user.name", "items[0].price > 10"). The result is
// converted back into a tree.
func Query(doc ir.Handle, src string) (ir.Handle, error) {
	env, ok := ir.ToAny(doc).(map[string]any)
	if !ok {
		return ir.Handle{}, fmt.Errorf("%w: query needs an Object document, have %s", ir.ErrType, doc.Kind())
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return ir.Handle{}, fmt.Errorf("compiling query %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("running query %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("query %q gave %v\n", src, res)
	}
	return ir.FromAny(res)
}
