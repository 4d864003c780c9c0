// Package deck models a presentation as an ordered list of slides, each
// holding a tree of shapes. Shapes form a closed set of variants so that
// consumers can switch on the concrete type instead of probing capabilities.
package deck

import "strings"

// Presentation is a parsed document in slide order.
type Presentation struct {
	Slides []Slide
}

// Slide is one page of the presentation.
type Slide struct {
	// Title is the slide's title placeholder, nil when the slide has none
	// or the placeholder carries no text body.
	Title *TextShape
	// Shapes are the top-level shapes in document order. The title
	// placeholder is included here as well.
	Shapes []Shape
}

// Shape is implemented by TextShape, TableShape, GroupShape and OtherShape.
type Shape interface {
	isShape()
}

// TextShape is a shape with a text body.
type TextShape struct {
	Paragraphs []string
}

// TableShape holds cell texts row-major.
type TableShape struct {
	Rows [][]string
}

// GroupShape contains nested shapes in document order.
type GroupShape struct {
	Shapes []Shape
}

// OtherShape stands in for anything that carries no readable text:
// pictures, connectors, charts, or elements the reader did not understand.
type OtherShape struct {
	Kind string
}

func (TextShape) isShape()  {}
func (TableShape) isShape() {}
func (GroupShape) isShape() {}
func (OtherShape) isShape() {}

// Text joins the paragraphs with newlines.
func (t TextShape) Text() string {
	return strings.Join(t.Paragraphs, "\n")
}
