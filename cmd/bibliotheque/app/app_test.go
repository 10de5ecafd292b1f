package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

const dataFile = "/library/books.json"

type harness struct {
	app *App
	fs  *storage.Afero
	out *bytes.Buffer
	err *bytes.Buffer
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	isolate(t)

	h := &harness{fs: storage.NewMemory(), out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	nop := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithConfig(&Config{File: dataFile, LogFormat: "json", LogOutput: "discard"}),
		WithLogger(&nop),
		WithFS(h.fs),
		WithIO(strings.NewReader(stdin), h.out, h.err),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	h.app = app
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.err.Reset()
	return h.app.Execute(context.Background(), args)
}

// TestApp_EndToEnd drives the store through the CLI and checks the file.
func TestApp_EndToEnd(t *testing.T) {
	h := newHarness(t, "")

	if err := h.run(t, "add", "--title", "Dune", "--author", "Frank Herbert", "--isbn", "0441013597", "--year", "1965"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := h.run(t, "add", "--title", "1984", "--author", "George Orwell", "--isbn", "0451524935", "--year", "1949"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := h.run(t, "-o", "json", "search", "title", "19"); err != nil {
		t.Fatalf("search: %v", err)
	}
	var found []catalogs.Book
	if err := json.Unmarshal(h.out.Bytes(), &found); err != nil {
		t.Fatalf("decode search output %q: %v", h.out.String(), err)
	}
	if len(found) != 1 || found[0].Title != "1984" {
		t.Errorf("search title 19 = %+v", found)
	}

	if err := h.run(t, "remove", "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	res, err := catalogs.Load(h.fs, dataFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(res.Books) != 1 || res.Books[0].Title != "1984" {
		t.Errorf("file contents = %+v", res.Books)
	}
}

// TestApp_FileFlag verifies --file selects the data file.
func TestApp_FileFlag(t *testing.T) {
	h := newHarness(t, "")

	if err := h.run(t, "--file", "/other.json", "add", "--title", "Dune"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, _ := h.fs.Exists("/other.json"); !ok {
		t.Error("--file was not used")
	}
	if ok, _ := h.fs.Exists(dataFile); ok {
		t.Error("configured file should be untouched")
	}
}

// TestApp_StrictFlag verifies --strict surfaces a corrupt data file.
func TestApp_StrictFlag(t *testing.T) {
	h := newHarness(t, "")
	if err := h.fs.WriteFileAtomic(dataFile, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := h.run(t, "--strict", "list")
	if !errors.IsParseFailure(err) {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

// TestApp_LenientLoad verifies a corrupt file is reported but not fatal.
func TestApp_LenientLoad(t *testing.T) {
	h := newHarness(t, "")
	if err := h.fs.WriteFileAtomic(dataFile, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := h.run(t, "-o", "json", "info"); err != nil {
		t.Fatalf("info: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal(h.out.Bytes(), &info); err != nil {
		t.Fatalf("decode info: %v", err)
	}
	if info["load_error"] == nil || info["load_status"] != "failed" || info["count"] != float64(0) {
		t.Errorf("info = %v", info)
	}
}

// TestApp_DefaultsToMenu verifies the bare command opens the menu.
func TestApp_DefaultsToMenu(t *testing.T) {
	h := newHarness(t, "4\n6\n")

	if err := h.run(t); err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(h.out.String(), "No books in the catalog.") {
		t.Errorf("menu output = %q", h.out.String())
	}
}

// TestApp_Catalog verifies the store is created once.
func TestApp_Catalog(t *testing.T) {
	h := newHarness(t, "")

	first, err := h.app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	second, err := h.app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	if first != second {
		t.Error("Catalog() should return the same instance")
	}
	if first.Path() != dataFile {
		t.Errorf("Path() = %q, want %q", first.Path(), dataFile)
	}
}

// TestApp_CatalogHooks verifies store mutations are logged by the app.
func TestApp_CatalogHooks(t *testing.T) {
	isolate(t)
	tl := logging.NewTestLogger(t)
	app, err := New("dev", "", "", "",
		WithConfig(&Config{File: dataFile}),
		WithLogger(tl.Logger),
		WithFS(storage.NewMemory()),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	catalog, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	if err := catalog.Add(catalogs.Book{Title: "Dune"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := catalog.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt() failed: %v", err)
	}

	tl.AssertContains(t, `"operation":"add"`)
	tl.AssertContains(t, `"message":"Book added"`)
	tl.AssertContains(t, `"operation":"remove"`)
	tl.AssertContains(t, `"count":0`)
}

// TestApp_Version verifies version information.
func TestApp_Version(t *testing.T) {
	h := newHarness(t, "")

	if err := h.run(t, "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(h.out.String(), "bibliotheque version 1.0.0") {
		t.Errorf("version output = %q", h.out.String())
	}
	if h.app.Commit() != "abc123" || h.app.Date() != "2026-01-01" || h.app.BuiltBy() != "test" {
		t.Error("build information not stored")
	}
}

// TestApp_UnknownCommand verifies cobra rejects unknown commands.
func TestApp_UnknownCommand(t *testing.T) {
	h := newHarness(t, "")
	if err := h.run(t, "frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}

// TestWithFS_Nil verifies option validation.
func TestWithFS_Nil(t *testing.T) {
	isolate(t)
	if _, err := New("dev", "", "", "", WithConfig(&Config{}), WithFS(nil)); err == nil {
		t.Error("expected error for nil filesystem")
	}
}
