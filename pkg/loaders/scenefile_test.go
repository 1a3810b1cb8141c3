package loaders

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseSceneFile(t *testing.T) {
	input := `png 320 240 out.png

# a comment
color 1 0.5 0.25
sphere 0 0 -3 1
xyz 0 0 0
xyz 1 0 0
xyz 0 1 0
trif 1 2 -1
sun 1 1 1
bounces 6
aa 2
expose 1.5
`

	file, err := ParseSceneFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}

	expectedHeader := Header{Format: "png", Width: 320, Height: 240, Name: "out.png"}
	if file.Header != expectedHeader {
		t.Errorf("Expected header %+v, got %+v", expectedHeader, file.Header)
	}

	expectedKinds := []EntryKind{
		EntryColor, EntrySphere, EntryVertex, EntryVertex, EntryVertex,
		EntryTriangle, EntrySun, EntryBounces, EntryAA, EntryExpose,
	}
	if len(file.Entries) != len(expectedKinds) {
		t.Fatalf("Expected %d entries, got %d", len(expectedKinds), len(file.Entries))
	}
	for i, kind := range expectedKinds {
		if file.Entries[i].Kind != kind {
			t.Errorf("Entry %d: expected %s, got %s", i, kind, file.Entries[i].Kind)
		}
	}

	sphere := file.Entries[1]
	if sphere.Line != 5 {
		t.Errorf("Expected sphere on line 5, got %d", sphere.Line)
	}
	if len(sphere.Floats) != 4 || sphere.Floats[2] != -3 || sphere.Floats[3] != 1 {
		t.Errorf("Unexpected sphere arguments %v", sphere.Floats)
	}

	trif := file.Entries[5]
	if len(trif.Ints) != 3 || trif.Ints[2] != -1 {
		t.Errorf("Unexpected triangle indices %v", trif.Ints)
	}
}

func TestParseSceneFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "\n\n", ErrEmptyFile},
		{"bad header field count", "png 10 10\n", ErrInvalidHeader},
		{"bad header format", "gif 10 10 out.gif\n", ErrInvalidHeader},
		{"bad header width", "png ten 10 out.png\n", ErrInvalidHeader},
		{"zero height", "png 10 0 out.png\n", ErrInvalidHeader},
		{"unknown keyword", "png 10 10 out.png\ncube 1 2 3\n", ErrUnknownEntry},
		{"too few arguments", "png 10 10 out.png\nsphere 1 2 3\n", ErrInvalidEntry},
		{"too many arguments", "png 10 10 out.png\nsun 1 2 3 4\n", ErrInvalidEntry},
		{"non-numeric float", "png 10 10 out.png\ncolor 1 x 1\n", ErrInvalidEntry},
		{"non-integer index", "png 10 10 out.png\ntrif 1 2 3.5\n", ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseSceneFile(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Expected error, got scene %+v", file)
			}
			if errors.Cause(err) != tt.expected {
				t.Errorf("Expected cause %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParseSceneFile_ErrorMentionsLine(t *testing.T) {
	_, err := ParseSceneFile(strings.NewReader("png 10 10 out.png\nsphere 0 0 0 1\nbogus\n"))
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error to mention line 3, got %q", err.Error())
	}
}
