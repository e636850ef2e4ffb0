package layout

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestPageRendersProvidedContent(t *testing.T) {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("<section>content</section>"))
		return err
	})

	var buf bytes.Buffer
	flashes := []Flash{{Category: FlashError, Message: "Recipe not found"}, {Category: FlashSuccess, Message: "Saved"}}
	if err := Page("Browse", flashes, content).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render page: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>Browse | Meal Share</title>",
		"<section>content</section>",
		`class="flash flash-error"`,
		"Recipe not found",
		`class="flash flash-success"`,
		`href="/add_recipe"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestPageEscapesFlashMessages(t *testing.T) {
	var buf bytes.Buffer
	if err := Page("", []Flash{{Category: FlashError, Message: "<script>x</script>"}}, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render page: %v", err)
	}
	if strings.Contains(buf.String(), "<script>x</script>") {
		t.Fatalf("expected flash message to be escaped: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "<title>Meal Share</title>") {
		t.Fatalf("expected bare title without page name: %s", buf.String())
	}
}

func TestPageWritesNothingWhenContentFails(t *testing.T) {
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})

	var buf bytes.Buffer
	if err := Page("Broken", nil, failing).Render(context.Background(), &buf); err == nil {
		t.Fatal("expected content error to propagate")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
