package cssom

import (
	"fmt"

	"github.com/aymerick/douceur/parser"
)

// Validate runs generated CSS text through a CSS parser and reports
// syntax errors. It is a syntactic check only, and only as strict as the
// underlying parser, which accepts some malformed input (truncated rules
// are silently completed); selector semantics and declaration values are
// not interpreted.
func Validate(css string) error {
	sheet, err := parser.Parse(css)
	if err != nil {
		return fmt.Errorf("cssom: generated CSS does not parse: %w", err)
	}
	tracer().Debugf("validated stylesheet with %d top-level rule(s)", len(sheet.Rules))
	return nil
}
