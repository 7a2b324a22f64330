package xmltree

import "slices"

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a closed sum type over Scalar, Sequence and *Mapping.
type Value interface {
	Kind() Kind
	sealed()
}

// Scalar is a text leaf.
type Scalar string

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a string-keyed collection that remembers key insertion order.
type Mapping struct {
	keys   []string
	values map[string]Value
}

func (Scalar) Kind() Kind { return KindScalar }
func (Sequence) Kind() Kind { return KindSequence }
func (*Mapping) Kind() Kind { return KindMapping }
func (Scalar) sealed() {}
func (Sequence) sealed() {}
func (*Mapping) sealed() {}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores value under key. A key that already exists keeps its position.
func (m *Mapping) Set(key string, value Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Equal reports whether a and b are structurally identical, key order included.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Scalar:
		return av == b.(Scalar)
	case Sequence:
		bv := b.(Sequence)
		if len(av) != len(bv) {
			return false
		}

		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}

		return true
	case *Mapping:
		bv := b.(*Mapping)
		if !slices.Equal(av.keys, bv.keys) {
			return false
		}

		for _, k := range av.keys {
			if !Equal(av.values[k], bv.values[k]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
