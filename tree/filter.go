package tree

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// CompileKeep compiles a pruning predicate from an expression over the
// visited node. The environment exposes id, depth, index, leaf and the
// node's payload as data, e.g. `depth <= 2 && id != "skip"`.
func CompileKeep(src string) (Keep, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("keep expression %q: %w", src, err)
	}
	return func(n *Node, it Item) bool {
		env := map[string]any{
			"id":    n.id,
			"depth": it.Depth,
			"index": it.Index,
			"leaf":  n.IsLeaf(),
			"data":  n.Data,
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return false
		}
		keep, _ := out.(bool)
		return keep
	}, nil
}
