package Trees

// SwapError is the reason Swap failed.
type SwapError byte

const (
	// SwapNotFound1 means the first value wasn't found.
	SwapNotFound1 SwapError = iota + 1
	// SwapNotFound2 means the second value wasn't found.
	SwapNotFound2
	// SwapSame means both values were found at the same node.
	SwapSame
)

func (e SwapError) Error() string {
	switch e {
	case SwapNotFound1:
		return "cannot swap: first value not found"
	case SwapNotFound2:
		return "cannot swap: second value not found"
	case SwapSame:
		return "cannot swap: both values are at the same node"
	default:
		return "cannot swap"
	}
}
