package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For argv lines
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Argument Specific Colors
var (
	AliasColor    = color.New(color.FgYellow).SprintFunc()
	ArgumentColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	MarkerColor   = color.New(color.FgRed, color.Bold).SprintFunc() // Carets under a located argument
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
