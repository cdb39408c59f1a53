package fold

// Folder rewrites a tree bottom-up, producing a new tree.
//
// Each hook is called once for every node of its kind. Go interfaces carry no
// method bodies, so the default behaviour lives in DefaultFoldName,
// DefaultFoldExpr and DefaultFoldStmt; a policy overrides a hook by
// implementing it and delegates the others to the defaults, passing itself so
// recursion re-enters the policy.
//
// A FoldExpr that does not recurse into Add or Sub stops the walk at that
// node. That is how a policy replaces a whole subtree without visiting it.
type Folder interface {
	FoldName(n *Name) *Name
	FoldExpr(e Expr) Expr
	FoldStmt(s Stmt) Stmt
}

// DefaultFoldName returns n unchanged.
func DefaultFoldName(_ Folder, n *Name) *Name {
	return n
}

// DefaultFoldExpr rebuilds Add and Sub from f.FoldExpr of their operands,
// left first. Literals are returned unchanged.
func DefaultFoldExpr(f Folder, e Expr) Expr {
	switch e := e.(type) {
	case *Add:
		left := f.FoldExpr(e.Left)
		right := f.FoldExpr(e.Right)
		return &Add{Left: left, Right: right}
	case *Sub:
		left := f.FoldExpr(e.Left)
		right := f.FoldExpr(e.Right)
		return &Sub{Left: left, Right: right}
	default:
		return e
	}
}

// DefaultFoldStmt rebuilds s with its name folded by f.FoldName and its
// expression folded by f.FoldExpr.
func DefaultFoldStmt(f Folder, s Stmt) Stmt {
	switch s := s.(type) {
	case *ExprStmt:
		return &ExprStmt{X: f.FoldExpr(s.X)}
	case *Let:
		name := f.FoldName(s.Name)
		value := f.FoldExpr(s.Value)
		return &Let{Name: name, Value: value}
	default:
		return s
	}
}

// Apply runs each folder over s in turn, feeding every pass the result of
// the previous one.
func Apply(s Stmt, folders ...Folder) Stmt {
	for _, f := range folders {
		s = f.FoldStmt(s)
	}
	return s
}

var (
	_ Folder = Identity{}
	_ Folder = Renamer{}
	_ Folder = (*Funcs)(nil)
)

// Identity overrides nothing. Folding with it yields a structural copy.
type Identity struct{}

// FoldName returns n unchanged.
func (id Identity) FoldName(n *Name) *Name { return DefaultFoldName(id, n) }

// FoldExpr rebuilds e with the default rules.
func (id Identity) FoldExpr(e Expr) Expr { return DefaultFoldExpr(id, e) }

// FoldStmt rebuilds s with the default rules.
func (id Identity) FoldStmt(s Stmt) Stmt { return DefaultFoldStmt(id, s) }

// DefaultRename is the name NewRenamer binds.
const DefaultRename = "foo"

// Renamer replaces every Name with To and leaves everything else as is.
type Renamer struct {
	To string
}

// NewRenamer returns a Renamer binding DefaultRename.
func NewRenamer() Renamer {
	return Renamer{To: DefaultRename}
}

// FoldName returns a fresh Name holding r.To.
func (r Renamer) FoldName(*Name) *Name {
	return &Name{Value: r.To}
}

// FoldExpr rebuilds e, renaming nothing since expressions hold no names.
func (r Renamer) FoldExpr(e Expr) Expr { return DefaultFoldExpr(r, e) }

// FoldStmt rebuilds s with its bound name replaced.
func (r Renamer) FoldStmt(s Stmt) Stmt { return DefaultFoldStmt(r, s) }
