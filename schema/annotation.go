// Package schema provides the building blocks shared by trait and variant
// definitions: the annotation system used to attach cross-cutting metadata
// to fields and traits.
//
// The subpackages hold the declaration surface:
//
//   - [field]: fluent builders for typed, validated fields
//   - [trait]: reusable field groups composed into variants
package schema

// Annotation is metadata attached to a field or trait definition. Consumers
// such as the code generator look annotations up by Name.
type Annotation interface {
	// Name describes the annotation and is used as its lookup key, so it
	// must be unique per annotation type.
	Name() string
}

// Merger wraps the Merge method. Annotations that implement it control how
// two annotations of the same name are combined when a trait and a variant
// both declare them.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation attaches free-form documentation to a definition.
type CommentAnnotation struct {
	Text string
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string { return "Comment" }

// Comment returns a comment annotation with the given text.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}

var _ Annotation = (*CommentAnnotation)(nil)
