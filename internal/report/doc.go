// Package report renders validation and migration outcomes for the
// terminal. Styling is applied only when stdout is an interactive
// terminal; piped and CI output stays plain so it can be grepped.
package report
