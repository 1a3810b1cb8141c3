package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFile     = errors.New("loaders: scene file is empty")
	ErrInvalidHeader = errors.New("loaders: invalid scene file header")
	ErrUnknownEntry  = errors.New("loaders: unknown scene entry")
	ErrInvalidEntry  = errors.New("loaders: invalid scene entry")
)

// EntryKind names a scene file keyword
type EntryKind string

const (
	EntrySphere    EntryKind = "sphere"
	EntryPlane     EntryKind = "plane"
	EntryVertex    EntryKind = "xyz"
	EntryTriangle  EntryKind = "trif"
	EntrySun       EntryKind = "sun"
	EntryBulb      EntryKind = "bulb"
	EntryColor     EntryKind = "color"
	EntryShininess EntryKind = "shininess"
	EntryAlbedo    EntryKind = "albedo"
	EntryEye       EntryKind = "eye"
	EntryForward   EntryKind = "forward"
	EntryUp        EntryKind = "up"
	EntryExpose    EntryKind = "expose"
	EntryBounces   EntryKind = "bounces"
	EntryAA        EntryKind = "aa"
)

// argSpec describes the arguments a keyword takes
type argSpec struct {
	count   int
	integer bool
}

var entrySpecs = map[EntryKind]argSpec{
	EntrySphere:    {count: 4},
	EntryPlane:     {count: 4},
	EntryVertex:    {count: 3},
	EntryTriangle:  {count: 3, integer: true},
	EntrySun:       {count: 3},
	EntryBulb:      {count: 3},
	EntryColor:     {count: 3},
	EntryShininess: {count: 1},
	EntryAlbedo:    {count: 1},
	EntryEye:       {count: 3},
	EntryForward:   {count: 3},
	EntryUp:        {count: 3},
	EntryExpose:    {count: 1},
	EntryBounces:   {count: 1, integer: true},
	EntryAA:        {count: 1, integer: true},
}

// Header is the first line of a scene file: "<format> <width> <height> <name>"
type Header struct {
	Format string // Output image format (png, bmp, tiff)
	Width  int
	Height int
	Name   string // Output file name
}

// Entry is a single declarative line of a scene file. Integer keywords
// (trif, bounces, aa) fill Ints, all others fill Floats.
type Entry struct {
	Kind   EntryKind
	Line   int // 1-based line in the source file
	Floats []float64
	Ints   []int
}

// SceneFile is the parsed, still declarative, content of a scene file
type SceneFile struct {
	Header  Header
	Entries []Entry
}

// supportedFormats lists the header formats the output package can encode
var supportedFormats = map[string]bool{"png": true, "bmp": true, "tiff": true}

// ParseSceneFile parses scene content from an io.Reader. Blank lines and
// lines starting with '#' are skipped.
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	var file *SceneFile

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if file == nil {
			header, err := parseHeader(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			file = &SceneFile{Header: header}
			continue
		}

		entry, err := parseEntry(line, lineNumber)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		file.Entries = append(file.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading scene input")
	}
	if file == nil {
		return nil, ErrEmptyFile
	}

	return file, nil
}

// LoadSceneFile loads and parses a scene file from disk
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open scene file")
	}
	defer file.Close()

	scene, err := ParseSceneFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return scene, nil
}

func parseHeader(line string) (Header, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "expected 4 fields, got %d", len(parts))
	}

	format := strings.ToLower(parts[0])
	if !supportedFormats[format] {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "unknown output format %q", parts[0])
	}

	width, err := strconv.Atoi(parts[1])
	if err != nil || width <= 0 {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "invalid width %q", parts[1])
	}
	height, err := strconv.Atoi(parts[2])
	if err != nil || height <= 0 {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "invalid height %q", parts[2])
	}

	return Header{Format: format, Width: width, Height: height, Name: parts[3]}, nil
}

func parseEntry(line string, lineNumber int) (Entry, error) {
	parts := strings.Fields(line)
	kind := EntryKind(parts[0])

	spec, ok := entrySpecs[kind]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownEntry, "%q", parts[0])
	}

	args := parts[1:]
	if len(args) != spec.count {
		return Entry{}, errors.Wrapf(ErrInvalidEntry, "%s expects %d arguments, got %d", kind, spec.count, len(args))
	}

	entry := Entry{Kind: kind, Line: lineNumber}
	for _, arg := range args {
		if spec.integer {
			value, err := strconv.Atoi(arg)
			if err != nil {
				return Entry{}, errors.Wrapf(ErrInvalidEntry, "%s: %q is not an integer", kind, arg)
			}
			entry.Ints = append(entry.Ints, value)
			continue
		}

		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return Entry{}, errors.Wrapf(ErrInvalidEntry, "%s: %q is not a number", kind, arg)
		}
		entry.Floats = append(entry.Floats, value)
	}

	return entry, nil
}
