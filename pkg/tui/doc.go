// Package tui runs a form session interactively in the terminal, mapping
// each schema field onto a survey prompt and the answers onto session
// mutations.
package tui
