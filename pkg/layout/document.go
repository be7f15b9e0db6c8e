// Package layout loads device layout diagrams into a read-only element tree.
package layout

import (
	"encoding/xml"
	"strings"
)

// SVGNamespace is the SVG XML namespace.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Element is a single node of a layout document.
type Element struct {
	// Name is the qualified tag name.
	Name xml.Name

	// Attrs holds the element attributes in document order.
	Attrs []xml.Attr

	// Children holds the child elements in document order.
	Children []*Element
}

// Attr returns the value of the attribute with the given local name and
// no namespace. The second return value reports whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the id attribute, or "".
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the whitespace-separated tokens of the class attribute.
func (e *Element) Classes() []string {
	class, _ := e.Attr("class")
	return strings.Fields(class)
}

// HasClass returns true if the class attribute contains the given token.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// IsSVG returns true if the element is an svg element, bare or in the SVG namespace.
func (e *Element) IsSVG() bool {
	return e.Name.Local == "svg" && (e.Name.Space == "" || e.Name.Space == SVGNamespace)
}

// Walk calls fn for the element and all its descendants in document order.
// Walking stops early if fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Document is a parsed layout diagram.
type Document struct {
	// Root is the document element.
	Root *Element
}

// FindByID returns all descendants of the root whose id equals id.
// The root element itself is not considered.
func (d *Document) FindByID(id string) []*Element {
	var found []*Element
	for _, c := range d.Root.Children {
		c.Walk(func(e *Element) bool {
			if v, ok := e.Attr("id"); ok && v == id {
				found = append(found, e)
			}
			return true
		})
	}
	return found
}

// IDs returns the ids of all descendants of the root in document order.
func (d *Document) IDs() []string {
	var ids []string
	for _, c := range d.Root.Children {
		c.Walk(func(e *Element) bool {
			if id := e.ID(); id != "" {
				ids = append(ids, id)
			}
			return true
		})
	}
	return ids
}
