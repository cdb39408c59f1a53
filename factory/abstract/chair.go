package abstract

// Chair interface.
type Chair interface {
	Assemble() string
}

// ModernChair This is the modern chair.
type ModernChair struct{}

func (ModernChair) Assemble() string {
	return "Assembling modern chair"
}

// VictorianChair This is the Victorian chair.
type VictorianChair struct{}

func (VictorianChair) Assemble() string {
	return "Assembling Victorian chair"
}
