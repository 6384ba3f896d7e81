package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmitterKind names an output format.
type EmitterKind string

const (
	EmitterPDF  EmitterKind = "pdf"
	EmitterHTML EmitterKind = "html"
	EmitterEPUB EmitterKind = "epub"
)

var (
	// ErrInvalidBook wraps manifest validation failures.
	ErrInvalidBook = errors.New("invalid book manifest")
	// ErrNilPublisher is returned by Publish without a publisher.
	ErrNilPublisher = errors.New("nil publisher")
)

// Chapter is one manuscript file with its heading.
type Chapter struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

// Book is a declarative publishing manifest.
type Book struct {
	Title    string        `yaml:"title"`
	Output   string        `yaml:"output"`
	Chapters []Chapter     `yaml:"chapters"`
	Emitters []EmitterKind `yaml:"emitters"`
}

// Publisher renders a book. Implementations live outside this module.
type Publisher interface {
	Publish(ctx context.Context, title string, chapters []Chapter, basename string, emitters []EmitterKind) error
}

// NewBook returns an empty book with the given title.
func NewBook(title string) *Book {
	return &Book{Title: title}
}

// Chapter appends a chapter and returns b for chaining.
func (b *Book) Chapter(title, path string) *Book {
	b.Chapters = append(b.Chapters, Chapter{Title: title, Path: path})
	return b
}

// Load decodes a YAML manifest and validates it. Unknown fields are rejected.
func Load(r io.Reader) (*Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Book
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidBook, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that the book can be handed to a publisher.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if strings.TrimSpace(b.Output) == "" {
		return fmt.Errorf("%w: output basename is required", ErrInvalidBook)
	}
	if strings.ContainsAny(b.Output, `/\`) {
		return fmt.Errorf("%w: output %q must be a basename", ErrInvalidBook, b.Output)
	}
	if len(b.Chapters) == 0 {
		return fmt.Errorf("%w: at least one chapter is required", ErrInvalidBook)
	}
	for i, ch := range b.Chapters {
		if strings.TrimSpace(ch.Title) == "" || strings.TrimSpace(ch.Path) == "" {
			return fmt.Errorf("%w: chapter %d needs a title and a path", ErrInvalidBook, i+1)
		}
	}
	if len(b.Emitters) == 0 {
		return fmt.Errorf("%w: at least one emitter is required", ErrInvalidBook)
	}
	seen := make(map[EmitterKind]bool, len(b.Emitters))
	for _, e := range b.Emitters {
		switch e {
		case EmitterPDF, EmitterHTML, EmitterEPUB:
		default:
			return fmt.Errorf("%w: unknown emitter %q", ErrInvalidBook, e)
		}
		if seen[e] {
			return fmt.Errorf("%w: duplicate emitter %q", ErrInvalidBook, e)
		}
		seen[e] = true
	}
	return nil
}

// Publish validates b and passes it to p. Chapter order is preserved.
func (b *Book) Publish(ctx context.Context, p Publisher) error {
	if p == nil {
		return ErrNilPublisher
	}
	if err := b.Validate(); err != nil {
		return err
	}

	chapters := make([]Chapter, len(b.Chapters))
	copy(chapters, b.Chapters)
	emitters := make([]EmitterKind, len(b.Emitters))
	copy(emitters, b.Emitters)

	return p.Publish(ctx, b.Title, chapters, b.Output, emitters)
}
