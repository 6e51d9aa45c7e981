// Package diag carries messages about generated units that produced unreliable
// output. Diagnostics are returned with a unit instead of being printed.
package diag

import (
	"fmt"
	"log"
)

type Diagnostic struct {
	// Unit is the generated unit the message is about.
	Unit    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Unit, d.Message)
}

// Report builds a diagnostic for unit.
func Report(unit string, format string, args ...any) Diagnostic {
	return Diagnostic{
		Unit:    unit,
		Message: fmt.Sprintf(format, args...),
	}
}

// Log writes every diagnostic as one line to logger.
func Log(logger *log.Logger, ds []Diagnostic) {
	for _, d := range ds {
		logger.Printf("error: %s", d)
	}
}
