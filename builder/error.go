package builder

import "errors"

var (
	// ErrNameMissing Build called before Name
	ErrNameMissing = errors.New("product name is not set")

	// ErrQuantityMissing Build called before Quantity
	ErrQuantityMissing = errors.New("product quantity is not set")
)
