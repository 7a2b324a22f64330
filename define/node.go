package define

import (
	"strconv"
	"strings"

	"github.com/defineEditor/parse-define-xml/internal/diagnostic"
	"github.com/defineEditor/parse-define-xml/internal/match"
	"github.com/defineEditor/parse-define-xml/internal/xmltree"
)

// node is an element of the normalized tree together with the location
// reported by errors raised while mapping it.
type node struct {
	xmltree.Element

	loc diagnostic.Location
}

func newNode(el xmltree.Element, key string) node {
	return node{
		Element: el,
		loc:     diagnostic.Location{Element: elementName(key), OID: el.AttrOr("oid")},
	}
}

// elementName turns a normalized key back into a readable element name.
func elementName(key string) string {
	if key == "" {
		return key
	}

	return strings.ToUpper(key[:1]) + key[1:]
}

// withOID reports errors under the given identifier.
func (n node) withOID(oid string) node {
	n.loc.OID = oid
	return n
}

// attr returns the attribute stored under name. Empty attributes read as absent.
func (n node) attr(name string) string {
	return n.AttrOr(name)
}

func (n node) children(key string) ([]node, error) {
	elements, err := n.Children(key)
	if err != nil {
		return nil, diagnostic.WrapShape(n.loc, err, "invalid "+elementName(key))
	}

	out := make([]node, len(elements))
	for i, el := range elements {
		out[i] = newNode(el, key)
	}

	return out, nil
}

func (n node) first(key string) (node, bool, error) {
	children, err := n.children(key)
	if err != nil || len(children) == 0 {
		return node{}, false, err
	}

	return children[0], true, nil
}

// required returns the first child stored under key and fails when there is none.
func (n node) required(key string) (node, error) {
	child, ok, err := n.first(key)
	if err != nil {
		return node{}, err
	}

	if !ok {
		return node{}, diagnostic.Shapef(n.loc, "missing required %s element", elementName(key))
	}

	return child, nil
}

// requiredText returns the text of the first child stored under key.
func (n node) requiredText(key string) (string, error) {
	child, err := n.required(key)
	if err != nil {
		return "", err
	}

	return child.Text(), nil
}

// yesNo reads a required "Yes"/"No" attribute.
func (n node) yesNo(field string) (bool, error) {
	v, err := n.optionalYesNo(field)
	if err != nil {
		return false, err
	}

	if v == nil {
		return false, n.literalError(field, "", "Yes", "No")
	}

	return *v, nil
}

// optionalYesNo reads an optional "Yes"/"No" attribute.
func (n node) optionalYesNo(field string) (*bool, error) {
	raw := n.attr(field)

	switch raw {
	case "":
		return nil, nil
	case "Yes", "No":
		v := raw == "Yes"
		return &v, nil
	default:
		return nil, n.literalError(field, raw, "Yes", "No")
	}
}

// yesOnly reads an optional attribute whose only legal literal is "Yes".
func (n node) yesOnly(field string) (bool, error) {
	switch raw := n.attr(field); raw {
	case "":
		return false, nil
	case "Yes":
		return true, nil
	default:
		return false, n.literalError(field, raw, "Yes")
	}
}

func (n node) literalError(field, value string, allowed ...string) error {
	suggestion, _ := match.Closest(value, allowed, match.DefaultThreshold)

	return &diagnostic.LiteralError{
		Location:   n.loc,
		Field:      field,
		Value:      value,
		Allowed:    allowed,
		Suggestion: suggestion,
	}
}

// intAttr parses an optional integer attribute.
func (n node) intAttr(field string) (*int, error) {
	raw := n.attr(field)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, diagnostic.WrapShape(n.loc, err, "invalid number in "+field)
	}

	return &v, nil
}

// floatAttr parses an optional decimal attribute.
func (n node) floatAttr(field string) (*float64, error) {
	raw := n.attr(field)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, diagnostic.WrapShape(n.loc, err, "invalid number in "+field)
	}

	return &v, nil
}
