package manifest

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingPublisher struct {
	title    string
	chapters []Chapter
	basename string
	emitters []EmitterKind
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, title string, chapters []Chapter, basename string, emitters []EmitterKind) error {
	p.title = title
	p.chapters = chapters
	p.basename = basename
	p.emitters = emitters
	return p.err
}

const sampleManifest = `
title: Objects, Classes, and Modules
output: rocm
chapters:
  - title: The Nature of Objects
    path: manuscript/001_nature_of_objects.md
  - title: Sharing Behavior
    path: manuscript/002_sharing_behavior.md
emitters: [pdf]
`

func TestLoadAndPublish(t *testing.T) {
	book, err := Load(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	pub := &recordingPublisher{}
	if err := book.Publish(context.Background(), pub); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if pub.title != "Objects, Classes, and Modules" {
		t.Fatalf("unexpected title %q", pub.title)
	}
	if pub.basename != "rocm" {
		t.Fatalf("unexpected basename %q", pub.basename)
	}
	if len(pub.chapters) != 2 || pub.chapters[0].Title != "The Nature of Objects" || pub.chapters[1].Title != "Sharing Behavior" {
		t.Fatalf("chapters not passed in order: %+v", pub.chapters)
	}
	if len(pub.emitters) != 1 || pub.emitters[0] != EmitterPDF {
		t.Fatalf("unexpected emitters %v", pub.emitters)
	}
}

func TestBuilderMatchesLoadedManifest(t *testing.T) {
	book := NewBook("Objects, Classes, and Modules").
		Chapter("The Nature of Objects", "manuscript/001_nature_of_objects.md")
	book.Output = "rocm"
	book.Emitters = []EmitterKind{EmitterPDF}

	if err := book.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(sampleManifest + "author: someone\n"))
	if !errors.Is(err, ErrInvalidBook) {
		t.Fatalf("expected ErrInvalidBook, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Book {
		b := NewBook("Title").Chapter("One", "one.md")
		b.Output = "out"
		b.Emitters = []EmitterKind{EmitterPDF}
		return b
	}

	tests := []struct {
		name   string
		mutate func(*Book)
	}{
		{"missing title", func(b *Book) { b.Title = " " }},
		{"missing output", func(b *Book) { b.Output = "" }},
		{"output with directory", func(b *Book) { b.Output = "build/out" }},
		{"no chapters", func(b *Book) { b.Chapters = nil }},
		{"chapter without path", func(b *Book) { b.Chapters[0].Path = "" }},
		{"no emitters", func(b *Book) { b.Emitters = nil }},
		{"unknown emitter", func(b *Book) { b.Emitters = []EmitterKind{"docx"} }},
		{"duplicate emitter", func(b *Book) { b.Emitters = []EmitterKind{EmitterPDF, EmitterPDF} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			if err := b.Validate(); !errors.Is(err, ErrInvalidBook) {
				t.Fatalf("expected ErrInvalidBook, got %v", err)
			}
		})
	}
}

func TestPublishPropagatesErrors(t *testing.T) {
	book, err := Load(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := book.Publish(context.Background(), nil); !errors.Is(err, ErrNilPublisher) {
		t.Fatalf("expected ErrNilPublisher, got %v", err)
	}

	boom := errors.New("render failed")
	if err := book.Publish(context.Background(), &recordingPublisher{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected publisher error, got %v", err)
	}
}
