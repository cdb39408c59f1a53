package fold

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Demo renames the binding of a small let statement and prints the tree
// before and after.
func Demo(w io.Writer) {
	stmt := &Let{
		Name: &Name{Value: "x"},
		Value: &Add{
			Left: &IntLit{Value: 1},
			Right: &Sub{
				Left:  &IntLit{Value: 5},
				Right: &IntLit{Value: 2},
			},
		},
	}
	fmt.Fprintf(w, "[Fold AST demo] Original: %s\n", stmt)
	renamed := NewRenamer().FoldStmt(stmt)
	fmt.Fprintf(w, "[Fold AST demo] Renamed: %s\n", renamed)
	fmt.Fprintf(w, "[Fold AST demo] Tree: %# v\n", pretty.Formatter(renamed))
}
