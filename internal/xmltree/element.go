package xmltree

import "fmt"

// Element is a read-only view over one parsed element. The underlying value
// is either a *Mapping or, for text-only elements, a Scalar.
type Element struct {
	value Value
}

// NewElement wraps a parsed value.
func NewElement(v Value) Element {
	return Element{value: v}
}

// Value returns the wrapped value.
func (e Element) Value() Value {
	return e.value
}

func (e Element) mapping() *Mapping {
	m, _ := e.value.(*Mapping)
	return m
}

// HasAttrs reports whether the element carries an attribute bag.
func (e Element) HasAttrs() bool {
	_, ok := e.mapping().Get(AttrKey)
	return ok
}

// Attr returns the attribute stored under name. Attributes that are not
// scalars are reported as absent.
func (e Element) Attr(name string) (string, bool) {
	bag, ok := e.mapping().Get(AttrKey)
	if !ok {
		return "", false
	}

	attrs, ok := bag.(*Mapping)
	if !ok {
		return "", false
	}

	v, ok := attrs.Get(name)
	if !ok {
		return "", false
	}

	s, ok := v.(Scalar)

	return string(s), ok
}

// AttrOr returns the attribute stored under name, or "" when absent.
func (e Element) AttrOr(name string) string {
	s, _ := e.Attr(name)
	return s
}

// Text returns the element's text content.
func (e Element) Text() string {
	switch v := e.value.(type) {
	case Scalar:
		return string(v)
	case *Mapping:
		if t, ok := v.Get(TextKey); ok {
			if s, ok := t.(Scalar); ok {
				return string(s)
			}
		}
	}

	return ""
}

// IsTextOnly reports whether the element is a bare text leaf.
func (e Element) IsTextOnly() bool {
	return e.value != nil && e.value.Kind() == KindScalar
}

// Has reports whether a child key exists.
func (e Element) Has(name string) bool {
	_, ok := e.mapping().Get(name)
	return ok
}

// Children returns the child elements stored under name. A missing key yields
// no elements; a key that does not hold a sequence is a shape error.
func (e Element) Children(name string) ([]Element, error) {
	v, ok := e.mapping().Get(name)
	if !ok {
		return nil, nil
	}

	seq, ok := v.(Sequence)
	if !ok {
		return nil, fmt.Errorf("expected %q to be a sequence, got %s", name, v.Kind())
	}

	out := make([]Element, len(seq))
	for i, child := range seq {
		out[i] = Element{value: child}
	}

	return out, nil
}

// First returns the first child element stored under name.
func (e Element) First(name string) (Element, bool, error) {
	children, err := e.Children(name)
	if err != nil {
		return Element{}, false, err
	}

	if len(children) == 0 {
		return Element{}, false, nil
	}

	return children[0], true, nil
}
