package domain

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Parse decodes a configuration document into a Node tree. The decoder
// keeps attribute and child order exactly as they appear in the document;
// whitespace-only text inside container elements is dropped, leaf text is
// kept verbatim.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node
		texts []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Key: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Err: errors.New("multiple root elements")}
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			texts = append(texts, &strings.Builder{})

		case xml.EndElement:
			n := stack[len(stack)-1]
			buf := texts[len(texts)-1].String()
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
			if len(n.Children) == 0 {
				n.Text = buf
			} else if s := strings.TrimSpace(buf); s != "" {
				n.Text = s
			}

		case xml.CharData:
			if len(texts) > 0 {
				texts[len(texts)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Err: errors.New("empty document")}
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(doc string) (*Node, error) {
	return Parse(strings.NewReader(doc))
}
