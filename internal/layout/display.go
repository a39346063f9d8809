package layout

// DisplayType is the layout mode applied to a node.
type DisplayType uint8

const (
	DisplayFlex   DisplayType = iota // Flexbox layout (default)
	DisplayNone                      // Node takes no space and is not rendered
	DisplayInline                    // Node flows inline with its siblings
)

// String returns the lowercase name of the display type.
func (d DisplayType) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	case DisplayInline:
		return "inline"
	default:
		return "unknown"
	}
}

// LayoutDirection is the text/flow direction a node was laid out with.
type LayoutDirection uint8

const (
	DirectionUndefined LayoutDirection = iota // Inherited or not yet resolved (default)
	DirectionLTR                              // Left-to-right
	DirectionRTL                              // Right-to-left
)

// String returns the lowercase name of the direction.
func (d LayoutDirection) String() string {
	switch d {
	case DirectionUndefined:
		return "undefined"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "unknown"
	}
}

// IsRTL returns true if start and end edges are mirrored.
func (d LayoutDirection) IsRTL() bool {
	return d == DirectionRTL
}
