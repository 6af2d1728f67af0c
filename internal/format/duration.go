package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a case or suite duration for display.
// Most cases finish in well under a millisecond, so it shows microseconds
// below a millisecond, milliseconds below a second, and the default string
// representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
