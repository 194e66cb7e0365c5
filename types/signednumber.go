package types

// SignedNumber is a generic constraint representing signed numeric types supported by this module.
// It allows helpers such as [github.com/polyshell/polyshell/numeric.Abs] to operate generically over
// integer and floating-point types without being rewritten per type.
type SignedNumber interface {
	int | int32 | int64 | float32 | float64
}
