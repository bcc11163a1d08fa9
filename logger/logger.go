// Package logger centralizes the trace keys used by the cssdecl packages.
//
// Tracing is done with schuko: clients (and tests) configure the
// adapter and the level for each key, and packages select their trace
// with [tracing.Select].
package logger

import (
	"github.com/npillmayer/schuko/tracing"
)

const (
	// KeyParser traces the tokenizer and the declaration list parser.
	KeyParser = "cssdecl.parser"
	// KeyValidation traces the declaration value grammar:
	// ignored declarations are reported at info level,
	// quirks and use counters at debug level.
	KeyValidation = "cssdecl.validation"
	// KeyValues traces the value pool.
	KeyValues = "cssdecl.values"
)

// Warning returns the trace used to report ignored declarations.
func Warning() tracing.Trace {
	return tracing.Select(KeyValidation)
}
