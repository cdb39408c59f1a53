package abstract

// Family is a furniture factory whose product types are known at compile time.
type Family[C Chair, S Sofa] interface {
	CreateChair() C

	CreateSofa() S
}

// FurnitureFactory factory interface.
type FurnitureFactory interface {
	CreateChair() Chair

	CreateSofa() Sofa
}

var (
	_ Family[ModernChair, ModernSofa]       = ModernFactory{}
	_ Family[VictorianChair, VictorianSofa] = VictorianFactory{}
	_ FurnitureFactory                      = Dynamic[ModernChair, ModernSofa]{}
)

type ModernFactory struct{}

func (ModernFactory) CreateChair() ModernChair {
	return ModernChair{}
}

func (ModernFactory) CreateSofa() ModernSofa {
	return ModernSofa{}
}

type VictorianFactory struct{}

func (VictorianFactory) CreateChair() VictorianChair {
	return VictorianChair{}
}

func (VictorianFactory) CreateSofa() VictorianSofa {
	return VictorianSofa{}
}

// Dynamic lifts a Family into a FurnitureFactory, so families can be chosen at run time.
type Dynamic[C Chair, S Sofa] struct {
	Family Family[C, S]
}

func (d Dynamic[C, S]) CreateChair() Chair {
	return d.Family.CreateChair()
}

func (d Dynamic[C, S]) CreateSofa() Sofa {
	return d.Family.CreateSofa()
}
