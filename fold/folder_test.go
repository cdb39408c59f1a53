package fold

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Stmt {
	return &Let{
		Name: &Name{Value: "x"},
		Value: &Add{
			Left: &IntLit{Value: 1},
			Right: &Sub{
				Left:  &IntLit{Value: 5},
				Right: &IntLit{Value: 2},
			},
		},
	}
}

func TestRenamerOnLet(t *testing.T) {
	stmt := &Let{Name: &Name{Value: "x"}, Value: &IntLit{Value: 3}}
	res := NewRenamer().FoldStmt(stmt)

	let, ok := res.(*Let)
	require.True(t, ok, "expected *Let, got %T", res)
	assert.Equal(t, "foo", let.Name.Value)
	lit, ok := let.Value.(*IntLit)
	require.True(t, ok, "expected *IntLit, got %T", let.Value)
	assert.Equal(t, int64(3), lit.Value)

	// input untouched
	assert.Equal(t, "x", stmt.Name.Value)
}

func TestRenamerOnNestedExpr(t *testing.T) {
	stmt := &ExprStmt{X: &Add{
		Left: &IntLit{Value: 2},
		Right: &Sub{
			Left:  &IntLit{Value: 4},
			Right: &IntLit{Value: 1},
		},
	}}
	res := NewRenamer().FoldStmt(stmt)

	es, ok := res.(*ExprStmt)
	require.True(t, ok, "expected *ExprStmt, got %T", res)
	assert.Equal(t, stmt.X, es.X)
	assert.Equal(t, "(2 + (4 - 1))", es.String())
}

func TestNewRenamerBindsDefault(t *testing.T) {
	assert.Equal(t, Renamer{To: DefaultRename}, NewRenamer())
	res := NewRenamer().FoldName(&Name{Value: "x"})
	assert.Equal(t, DefaultRename, res.Value)
}

func TestRenamerCustomName(t *testing.T) {
	res := Renamer{To: "y"}.FoldStmt(sample())
	assert.Equal(t, "let y = (1 + (5 - 2))", res.String())
}

func TestIdentity(t *testing.T) {
	stmts := []Stmt{
		sample(),
		&ExprStmt{X: &IntLit{Value: -7}},
		&ExprStmt{X: &Sub{Left: &Sub{Left: &IntLit{Value: 1}, Right: &IntLit{Value: 2}}, Right: &IntLit{Value: 3}}},
		&Let{Name: &Name{Value: "z"}, Value: &Add{Left: &IntLit{Value: 0}, Right: &IntLit{Value: 0}}},
	}
	for _, stmt := range stmts {
		once := Identity{}.FoldStmt(stmt)
		assert.Equal(t, stmt, once)
		twice := Identity{}.FoldStmt(once)
		assert.Equal(t, once, twice)
	}
}

func TestIdentityBuildsNewTree(t *testing.T) {
	stmt := sample().(*Let)
	res := Identity{}.FoldStmt(stmt).(*Let)
	assert.NotSame(t, stmt, res)
	assert.NotSame(t, stmt.Value, res.Value)
}

func TestRenamerPreservesShape(t *testing.T) {
	stmts := []Stmt{
		sample(),
		&ExprStmt{X: &Add{Left: &IntLit{Value: 9}, Right: &IntLit{Value: 8}}},
	}
	for _, stmt := range stmts {
		res := NewRenamer().FoldStmt(stmt)
		assert.IsType(t, stmt, res)
		switch s := stmt.(type) {
		case *Let:
			assert.Equal(t, s.Value, res.(*Let).Value)
		case *ExprStmt:
			assert.Equal(t, s.X, res.(*ExprStmt).X)
		}
	}
}

// recorder logs the kind of every node it is handed.
type recorder struct {
	kinds []string
}

func (r *recorder) FoldName(n *Name) *Name {
	r.kinds = append(r.kinds, "Name")
	return DefaultFoldName(r, n)
}

func (r *recorder) FoldExpr(e Expr) Expr {
	r.kinds = append(r.kinds, fmt.Sprintf("%T", e))
	return DefaultFoldExpr(r, e)
}

func (r *recorder) FoldStmt(s Stmt) Stmt {
	r.kinds = append(r.kinds, fmt.Sprintf("%T", s))
	return DefaultFoldStmt(r, s)
}

func TestEveryNodeVisitedOnce(t *testing.T) {
	r := &recorder{}
	r.FoldStmt(sample())
	assert.Equal(t, []string{
		"*fold.Let",
		"Name",
		"*fold.Add",
		"*fold.IntLit",
		"*fold.Sub",
		"*fold.IntLit",
		"*fold.IntLit",
	}, r.kinds)

	r = &recorder{}
	r.FoldStmt(&ExprStmt{X: &IntLit{Value: 1}})
	assert.Equal(t, []string{"*fold.ExprStmt", "*fold.IntLit"}, r.kinds)
}

func TestApply(t *testing.T) {
	res := Apply(sample(), Renamer{To: "a"}, Identity{}, Renamer{To: "b"})
	assert.Equal(t, "let b = (1 + (5 - 2))", res.String())
	assert.Equal(t, sample(), Apply(sample()))
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)
	t.Log(buf.String())
	assert.Contains(t, buf.String(), "[Fold AST demo] Original: let x = (1 + (5 - 2))\n")
	assert.Contains(t, buf.String(), "[Fold AST demo] Renamed: let foo = (1 + (5 - 2))\n")
	assert.Contains(t, buf.String(), "[Fold AST demo] Tree: ")
}
