// Package viz renders precision charts and styling for the terminal.
//
//   - [Chart]: multi-series asciigraph chart of the expected curve and bands
//   - [Theme]: lipgloss palettes plus matching chart colors
//   - [Footer]: the static credits and links shown under every view
package viz
