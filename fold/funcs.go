package fold

// Funcs is a Folder assembled from hook functions, one per node kind.
// A nil hook falls back to the default. Hooks receive the Funcs itself as
// their Folder so they can recurse through the other hooks.
//
// The default functions have matching signatures, so
// Funcs{Expr: DefaultFoldExpr} is valid and equivalent to leaving Expr nil.
type Funcs struct {
	Name func(f Folder, n *Name) *Name
	Expr func(f Folder, e Expr) Expr
	Stmt func(f Folder, s Stmt) Stmt
}

func (fs *Funcs) FoldName(n *Name) *Name {
	if fs.Name == nil {
		return DefaultFoldName(fs, n)
	}
	return fs.Name(fs, n)
}

func (fs *Funcs) FoldExpr(e Expr) Expr {
	if fs.Expr == nil {
		return DefaultFoldExpr(fs, e)
	}
	return fs.Expr(fs, e)
}

func (fs *Funcs) FoldStmt(s Stmt) Stmt {
	if fs.Stmt == nil {
		return DefaultFoldStmt(fs, s)
	}
	return fs.Stmt(fs, s)
}
