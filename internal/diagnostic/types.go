package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrXMLParse           = errors.New("XML parsing failed")
	ErrMissingODM         = errors.New("invalid Define-XML structure: missing ODM root element")
	ErrUnsupportedVersion = errors.New("unsupported Define-XML version or ARM flag")
	ErrInvalidLiteral     = errors.New("invalid literal")
	ErrShape              = errors.New("unexpected document structure")
)

// Location identifies the element an error relates to.
type Location struct {
	// Element is the normalized element name, e.g. "ItemGroupDef".
	Element string
	// OID is the identifier of the element (if any).
	OID string
}

// String returns "Element[OID]", "Element" or "".
func (l Location) String() string {
	switch {
	case l.Element == "":
		return ""
	case l.OID == "":
		return l.Element
	default:
		return l.Element + "[" + l.OID + "]"
	}
}

// LiteralError reports a controlled-vocabulary attribute holding a value
// outside its allowed literals.
type LiteralError struct {
	Location
	// Field is the normalized attribute name, e.g. "repeating".
	Field string
	// Value is the literal found in the document.
	Value string
	// Allowed lists the accepted literals.
	Allowed []string
	// Suggestion is the allowed literal closest to Value, if any is close.
	Suggestion string
}

// Error returns a message naming the field and the offending value.
func (e *LiteralError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, a := range e.Allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}

	msg := fmt.Sprintf("invalid value for %s: expected %s, received %q",
		e.Field, strings.Join(quoted, " or "), e.Value)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return withPrefix(e.Location, msg)
}

// Unwrap makes LiteralError match ErrInvalidLiteral.
func (e *LiteralError) Unwrap() error {
	return ErrInvalidLiteral
}

// ShapeError reports a parsed tree that does not have the layout a mapper
// expects: a missing required child, a non-numeric number and so on.
type ShapeError struct {
	Location
	Message string
	Err     error
}

// Error returns the location-prefixed message.
func (e *ShapeError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	return withPrefix(e.Location, msg)
}

// Is makes ShapeError match ErrShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// Unwrap returns the underlying cause.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Shapef builds a ShapeError at loc.
func Shapef(loc Location, format string, args ...any) error {
	return &ShapeError{Location: loc, Message: fmt.Sprintf(format, args...)}
}

// WrapShape builds a ShapeError at loc around err.
func WrapShape(loc Location, err error, message string) error {
	return &ShapeError{Location: loc, Message: message, Err: err}
}

func withPrefix(loc Location, msg string) string {
	if prefix := loc.String(); prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
