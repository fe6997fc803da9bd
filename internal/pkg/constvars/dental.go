package constvars

// Tooth numbering follows the Universal Numbering System used by OpenDental:
// 1-16 upper arch left-to-right, 17-32 lower arch right-to-left.
const (
	ToothNumberMin = 1
	ToothNumberMax = 32

	UpperArchFirst = 1
	UpperArchLast  = 16
	LowerArchFirst = 32
	LowerArchLast  = 17
)

// Quadrant labels for the four summary cards.
const (
	QuadrantUpperRight = "upper_right"
	QuadrantUpperLeft  = "upper_left"
	QuadrantLowerLeft  = "lower_left"
	QuadrantLowerRight = "lower_right"
)

// Procedure status filters on the procedures tab.
const (
	ProcedureFilterAll       = "all"
	ProcedureFilterCompleted = "completed"
	ProcedureFilterPlanned   = "planned"
)

// Placeholder rendered for absent monetary or textual values.
const ValuePlaceholder = "—"
