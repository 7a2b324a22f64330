package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Reserved keys of the tree convention.
const (
	AttrKey = "$"
	TextKey = "value"
)

// Parse parses XML text into a Mapping holding a single key: the root
// element's name as written in the source.
func Parse(text string) (*Mapping, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charsetReader

	parser := &treeParser{decoder: decoder}

	return parser.parseDocument()
}

// treeParser holds the parsing state.
type treeParser struct {
	decoder *xml.Decoder
	stack   []*frame
	root    *Mapping
}

// frame is an element that has been opened but not yet closed.
type frame struct {
	name     string
	attrs    *Mapping
	children *Mapping
	text     strings.Builder
}

func (p *treeParser) parseDocument() (*Mapping, error) {
	for {
		// RawToken keeps namespace prefixes as written.
		token, err := p.decoder.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, err
		}

		if err := p.processToken(token); err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 0 {
		return nil, fmt.Errorf("unexpected EOF: element <%s> is not closed", p.stack[len(p.stack)-1].name)
	}

	if p.root == nil {
		return nil, errors.New("document contains no root element")
	}

	return p.root, nil
}

func (p *treeParser) processToken(token xml.Token) error {
	switch t := token.(type) {
	case xml.StartElement:
		return p.handleStartElement(t)
	case xml.EndElement:
		return p.handleEndElement(t)
	case xml.CharData:
		if len(p.stack) > 0 {
			p.stack[len(p.stack)-1].text.Write(t)
		}
	case xml.Comment, xml.ProcInst, xml.Directive:
		// not part of the tree
	}

	return nil
}

func (p *treeParser) handleStartElement(element xml.StartElement) error {
	if len(p.stack) == 0 && p.root != nil {
		return fmt.Errorf("unexpected element <%s> after the root element", qualifiedName(element.Name))
	}

	f := &frame{
		name:     qualifiedName(element.Name),
		children: NewMapping(),
	}

	if len(element.Attr) > 0 {
		f.attrs = NewMapping()
		for _, attr := range element.Attr {
			f.attrs.Set(qualifiedName(attr.Name), Scalar(attr.Value))
		}
	}

	p.stack = append(p.stack, f)

	return nil
}

func (p *treeParser) handleEndElement(element xml.EndElement) error {
	name := qualifiedName(element.Name)
	if len(p.stack) == 0 {
		return fmt.Errorf("unexpected closing tag </%s>", name)
	}

	f := p.stack[len(p.stack)-1]
	if f.name != name {
		return fmt.Errorf("element <%s> closed by </%s>", f.name, name)
	}

	p.stack = p.stack[:len(p.stack)-1]
	value := f.value()

	if len(p.stack) == 0 {
		p.root = NewMapping()
		p.root.Set(name, value)

		return nil
	}

	parent := p.stack[len(p.stack)-1]
	existing, _ := parent.children.Get(name)
	seq, _ := existing.(Sequence)
	parent.children.Set(name, append(seq, value))

	return nil
}

// value converts a closed frame into its tree representation.
func (f *frame) value() Value {
	text := f.text.String()
	if f.attrs == nil && f.children.Len() == 0 {
		return Scalar(text)
	}

	node := NewMapping()
	if f.attrs != nil {
		node.Set(AttrKey, f.attrs)
	}

	for _, key := range f.children.keys {
		node.Set(key, f.children.values[key])
	}

	if strings.TrimSpace(text) != "" {
		node.Set(TextKey, Scalar(text))
	}

	return node
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}

	return name.Space + ":" + name.Local
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}

	return enc.NewDecoder().Reader(input), nil
}
