// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across overlay panels.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// PanelPadding is the horizontal padding on each side inside a panel border.
	PanelPadding = 1

	// HeaderHeight is the space for the title + separator in panels.
	HeaderHeight = 2

	// PanelChromeWidth is the total horizontal overhead of a panel (border + padding).
	PanelChromeWidth = BorderWidth + 2*PanelPadding

	// PanelChromeHeight is the total vertical overhead (border + header).
	// Used to calculate available rows: rows = panelHeight - PanelChromeHeight
	PanelChromeHeight = BorderHeight + HeaderHeight

	// ScreenMargin is the gap kept between a panel and the terminal edge.
	ScreenMargin = 1
)
