package define

import "github.com/defineEditor/parse-define-xml/internal/diagnostic"

// Sentinel errors matched with errors.Is.
var (
	ErrXMLParse           = diagnostic.ErrXMLParse
	ErrMissingODM         = diagnostic.ErrMissingODM
	ErrUnsupportedVersion = diagnostic.ErrUnsupportedVersion
	ErrInvalidLiteral     = diagnostic.ErrInvalidLiteral
	ErrShape              = diagnostic.ErrShape
)

type (
	// LiteralError names the attribute and the literal that was rejected.
	LiteralError = diagnostic.LiteralError
	// ShapeError reports a tree that lacks an expected element or number.
	ShapeError = diagnostic.ShapeError
)
