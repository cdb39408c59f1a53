package abstract

// Sofa interface.
type Sofa interface {
	Assemble() string
}

// ModernSofa This is the modern sofa.
type ModernSofa struct{}

func (ModernSofa) Assemble() string {
	return "Assembling modern sofa"
}

// VictorianSofa This is the Victorian sofa.
type VictorianSofa struct{}

func (VictorianSofa) Assemble() string {
	return "Assembling Victorian sofa"
}
