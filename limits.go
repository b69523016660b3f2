package pipesig

// Limits bounds the structural size of a signature. Limits are supplied
// to the Validator at construction time rather than read from globals,
// so different devices can validate against their own maximums.
type Limits struct {
	// MaxSignatures is the number of signature slots a pipeline may
	// use. A signature's BindingIndex must be below this value.
	MaxSignatures uint32

	// MaxResources is the maximum number of resources in one
	// signature.
	MaxResources uint32
}

// DefaultLimits returns the limits used when none are supplied.
func DefaultLimits() Limits {
	return Limits{
		MaxSignatures: 8,
		MaxResources:  256,
	}
}
