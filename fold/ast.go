package fold

import (
	"fmt"
	"strconv"
)

// Node is implemented by every tree node.
// Trees are built by the caller and never mutated afterwards; a Folder
// returns a new tree instead.
type Node interface {
	fmt.Stringer
	node()
}

// Name is a leaf holding an identifier.
type Name struct {
	Value string
}

func (*Name) node() {}

func (n *Name) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Value
}

// Expr is an expression node: *IntLit, *Add or *Sub.
type Expr interface {
	Node
	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// Add is Left + Right.
type Add struct {
	Left  Expr
	Right Expr
}

// Sub is Left - Right.
type Sub struct {
	Left  Expr
	Right Expr
}

func (*IntLit) node()     {}
func (*IntLit) exprNode() {}
func (*Add) node()        {}
func (*Add) exprNode()    {}
func (*Sub) node()        {}
func (*Sub) exprNode()    {}

func (e *IntLit) String() string {
	return strconv.FormatInt(e.Value, 10)
}

func (e *Add) String() string {
	return binary(e.Left, "+", e.Right)
}

func (e *Sub) String() string {
	return binary(e.Left, "-", e.Right)
}

// Stmt is a statement node: *ExprStmt or *Let.
type Stmt interface {
	Node
	stmtNode()
}

// ExprStmt is an expression evaluated for its own sake.
type ExprStmt struct {
	X Expr
}

// Let binds Value to Name.
type Let struct {
	Name  *Name
	Value Expr
}

func (*ExprStmt) node()     {}
func (*ExprStmt) stmtNode() {}
func (*Let) node()          {}
func (*Let) stmtNode()      {}

func (s *ExprStmt) String() string {
	return str(s.X)
}

func (s *Let) String() string {
	return fmt.Sprintf("let %s = %s", s.Name, str(s.Value))
}

func binary(left Expr, op string, right Expr) string {
	return "(" + str(left) + " " + op + " " + str(right) + ")"
}

func str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
