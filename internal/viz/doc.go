// Package viz renders comparisons in the terminal.
//
// [PlotComparison] draws the numeric and analytic curves with asciigraph,
// [Panel] formats key/value stats with lipgloss, and [Explorer] is a
// bubbletea model for changing the step count and parameters interactively.
package viz
