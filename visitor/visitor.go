package visitor

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ElementAVisitor visits ElementA.
type ElementAVisitor interface {
	VisitElementA(element ElementA)
}

// ElementBVisitor visits ElementB.
type ElementBVisitor interface {
	VisitElementB(element ElementB)
}

// Visitor interface extends all element visitor interfaces. This interface provides ease of use
// when a visitor needs to visit all element types.
type Visitor interface {
	ElementAVisitor
	ElementBVisitor
}

var _ Visitor = (*SummingVisitor)(nil)

// SummingVisitor adds up the values of ElementA and collects the texts of ElementB.
type SummingVisitor struct {
	Sum   int
	Texts []string
}

func NewSummingVisitor() *SummingVisitor {
	return &SummingVisitor{Texts: make([]string, 0)}
}

func (v *SummingVisitor) VisitElementA(element ElementA) {
	v.Sum += element.Value
}

func (v *SummingVisitor) VisitElementB(element ElementB) {
	v.Texts = append(v.Texts, element.Text)
}

// Walk lets visitor visit every element in order.
func Walk(visitor Visitor, elements ...Element) {
	for _, element := range elements {
		element.Accept(visitor)
	}
}

// Demo sums a mixed list of elements.
func Demo(w io.Writer) {
	elements := []Element{
		ElementA{Value: 2},
		ElementB{Text: "foo"},
		ElementA{Value: 5},
		ElementB{Text: "bar"},
	}
	visitor := NewSummingVisitor()
	Walk(visitor, elements...)
	texts, err := jsoniter.MarshalToString(visitor.Texts)
	if err != nil {
		fmt.Fprintf(w, "[Visitor demo] %v\n", err)
		return
	}
	fmt.Fprintf(w, "[Visitor demo] sum=%d, texts=%s\n", visitor.Sum, texts)
}
