package layout

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// DefaultMaxDepth is the default element nesting limit.
const DefaultMaxDepth = 256

var (
	// ErrNoRoot indicates the input contained no element.
	ErrNoRoot = errors.New("layout: no root element")

	// ErrTooDeep indicates the element nesting exceeded the configured limit.
	ErrTooDeep = errors.New("layout: element nesting too deep")
)

// ParseOptions configures document parsing.
type ParseOptions struct {
	// MaxDepth limits element nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a layout document from r.
func Parse(r io.Reader) (*Document, error) {
	return ParseWithOptions(r, ParseOptions{})
}

// ParseWithOptions parses a layout document from r using opts.
func ParseWithOptions(r io.Reader, opts ParseOptions) (*Document, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("layout: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("%w (limit %d)", ErrTooDeep, maxDepth)
			}
			el := &Element{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("layout: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Root: root}, nil
}
