package core

import (
	"encoding/xml"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Element is a generic labeled tree node carrying either scalar text or
// an ordered sequence of children. A nil *Element is the absent
// sentinel; transforms return nil for fields with nothing to render and
// Prune drops the sentinels in one pass before serialization.
type Element struct {
	Tag      string
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// Elem builds a container node. Nil children are kept as-is so a
// transform can list optional parts unconditionally.
func Elem(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

// Leaf builds a scalar node, or nothing when the value is empty.
func Leaf(tag, value string) *Element {
	if value == "" {
		return nil
	}
	return &Element{Tag: tag, Text: value}
}

// Append adds children to a container, tolerating nils.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Prune returns a copy of the tree with all absent sentinels removed,
// post-order. Containers that keep no children survive; an empty
// container is the transform's way of saying "this section exists".
func Prune(e *Element) *Element {
	if e == nil {
		return nil
	}
	out := &Element{Tag: e.Tag, Attrs: e.Attrs, Text: e.Text}
	for _, child := range e.Children {
		if pruned := Prune(child); pruned != nil {
			out.Children = append(out.Children, pruned)
		}
	}
	return out
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const generatedNotice = `<!-- This file was autogenerated by pomgen; do not edit it directly.
     Edit the project descriptor and regenerate instead. -->
`

// Render serializes a pruned element tree as indented UTF-8 XML text.
// When withNotice is set a fixed do-not-edit comment block is appended
// after the document.
func Render(root *Element, withNotice bool) (string, error) {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	enc := xml.NewEncoder(&sb)
	enc.Indent("", "  ")
	if err := encodeElement(enc, Prune(root)); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize element tree").
			WithCause(err)
	}
	if err := enc.Flush(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to flush xml encoder").
			WithCause(err)
	}
	sb.WriteString("\n")
	if withNotice {
		sb.WriteString(generatedNotice)
	}
	return sb.String(), nil
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	if e == nil {
		return nil
	}
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}, Attr: e.Attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := encodeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
