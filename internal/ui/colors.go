package ui

// Color accessor functions return the ANSI escape code of the active theme
// for a given semantic category. They resolve the theme at call time, so
// output written after InitTheme or SetTheme picks up the change.

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorMagenta returns the secondary color code.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
