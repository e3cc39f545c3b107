package page

// Menu is the collapsible navigation menu shown on narrow screens.
type Menu struct {
	open bool
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Close closes the menu. Following a menu link does this.
func (m *Menu) Close() {
	m.open = false
}

// IsOpen reports whether the menu is expanded.
func (m *Menu) IsOpen() bool {
	return m.open
}
