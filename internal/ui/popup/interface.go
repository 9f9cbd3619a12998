package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for overlay components drawn over the main view.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns the updated popup and a command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup. Positioned popups render at screen coordinates;
	// others render content only and are centered by RenderBordered.
	View() string

	// SetSize sets the available dimensions (the terminal size for
	// positioned popups).
	SetSize(width, height int)
}
