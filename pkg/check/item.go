package check

import "github.com/flying-elephant/libwacom/pkg/layout"

// HasItem verifies that doc contains exactly one element with the given id
// below its root, and that the element carries every class in classes.
// It returns nil on success.
func HasItem(doc *layout.Document, id string, classes ...string) error {
	if doc == nil || doc.Root == nil {
		return ErrMissingLayout
	}

	nodes := doc.FindByID(id)
	switch {
	case len(nodes) == 0:
		return &ItemError{Kind: ErrMissingElement, ID: id}
	case len(nodes) > 1:
		return &ItemError{Kind: ErrDuplicateID, ID: id, Count: len(nodes)}
	}

	node := nodes[0]
	have, _ := node.Attr("class")
	for _, class := range classes {
		if !node.HasClass(class) {
			return &ItemError{Kind: ErrMissingClass, ID: id, Count: 1, Class: class, Have: have}
		}
	}
	return nil
}
