//go:build js

package web

import "github.com/Carmen-Shannon/oxy-viewport/engine/viewport"

// Dear ImGui needs cgo, so browser builds go without the debug panel.
func newOverlay(string, int, int) overlay {
	return nil
}

// PanelOverlay returns nil in the browser.
func PanelOverlay(*viewport.Panel) func() {
	return nil
}
