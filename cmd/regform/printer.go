package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// printer writes styled status lines. Colors are dropped automatically when
// w is not a terminal.
type printer struct {
	w io.Writer
}

func (p printer) Headerf(format string, args ...any) {
	fmt.Fprintln(p.w, headerStyle.Render(fmt.Sprintf(format, args...)))
}

func (p printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.w, successStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

func (p printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.w, errorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

func (p printer) Mutedf(format string, args ...any) {
	fmt.Fprintln(p.w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (p printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
