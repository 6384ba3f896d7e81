// Package manifest describes the book that accompanies the combination-lock
// samples: a title, an ordered list of chapters, an output basename, and the
// emitters that should render it.
//
// Rendering is not implemented here. [Book.Publish] hands a validated book to
// a caller-supplied [Publisher].
package manifest
