package visitor

// Element accepts a Visitor and calls back the method for its own kind.
type Element interface {
	Accept(visitor Visitor)
}

// ElementA carries a number.
type ElementA struct {
	Value int
}

// Accept visitor.
func (e ElementA) Accept(visitor Visitor) {
	visitor.VisitElementA(e)
}

// ElementB carries a text.
type ElementB struct {
	Text string
}

// Accept visitor.
func (e ElementB) Accept(visitor Visitor) {
	visitor.VisitElementB(e)
}
