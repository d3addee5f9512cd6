package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which section tabs show numbers.
	LayoutCompactWidth = 100
)

// Gate and overlay dimensions.
const (
	gateListHeight  = 8
	gateColumnWidth = 26
	helpModalWidth  = 44
)
