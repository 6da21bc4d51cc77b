package hrx

import (
	"bytes"
	"encoding"
	"strings"
)

// Archive is a human readable archive: an optional comment plus ordered
// entries, separated in text form by the boundary.
//
// The boundary is a line of `=` characters bounded by `<` and `>`. Its
// length must be consistent across the whole document, which means no
// comment or file body may contain a newline followed by the boundary.
// The model cannot enforce that, Comment and Entries are free to mutate,
// so the archive re-checks its content whenever the boundary length
// changes ([Archive.SetBoundaryLength]) and before serializing
// ([Archive.Serialize]), reporting the first offending text as a
// [ContentError].
type Archive struct {
	// Comment is the archive level comment, nil when there is none.
	Comment *string

	// Entries holds the named entries in serialization order.
	Entries Entries

	boundaryLength int
}

var _ encoding.TextMarshaler = &Archive{}
var _ encoding.TextUnmarshaler = &Archive{}

// Entry is a single archive entry: an optional comment plus the entry
// data. A nil Data serializes like a [File] without body.
type Entry struct {
	// Comment is the entry comment, nil when there is none.
	Comment *string

	Data EntryData
}

// EntryData is the content variant of an [Entry], either a [File] or a
// [Directory].
type EntryData interface {
	isEntryData()
}

// File is entry data with an optional body. A nil Body means the entry
// has no body section at all; a pointer to the empty string means the
// body section is present but empty. The two serialize differently.
type File struct {
	Body *string
}

// Directory is entry data without any content.
type Directory struct{}

func (File) isEntryData()      {}
func (Directory) isEntryData() {}

// New returns an empty archive that serializes with the given boundary
// length. The length must be at least 1.
func New(boundaryLength int) (*Archive, error) {
	if boundaryLength < 1 {
		return nil, ErrBoundaryLength
	}

	return &Archive{boundaryLength: boundaryLength}, nil
}

// BoundaryLength returns the number of `=` characters in the boundary.
func (a *Archive) BoundaryLength() int {
	return a.boundaryLength
}

// SetBoundaryLength changes the boundary length, if possible.
//
// When any comment or body contains the new boundary the change is
// rejected with a [ContentError] naming the first offending text, and
// the archive is left unchanged.
func (a *Archive) SetBoundaryLength(n int) error {
	if n < 1 {
		return ErrBoundaryLength
	}

	if err := a.checkContent(n); err != nil {
		return err
	}

	a.boundaryLength = n
	return nil
}

// ValidateContent checks that no comment or body contains a newline
// followed by the current boundary. It reports the first offending text
// as a [ContentError] and never modifies the archive.
func (a *Archive) ValidateContent() error {
	return a.checkContent(a.boundaryLength)
}

func (a *Archive) checkContent(boundaryLength int) error {
	forbidden := "\n" + boundaryMarker(boundaryLength)

	if containsText(a.Comment, forbidden) {
		return ContentError{Location: InRootComment}
	}

	for path, entry := range a.Entries.All() {
		if containsText(entry.Comment, forbidden) {
			return ContentError{Location: InEntryComment, Path: path}
		}

		if file, ok := entry.Data.(File); ok && containsText(file.Body, forbidden) {
			return ContentError{Location: InFileBody, Path: path}
		}
	}

	return nil
}

func containsText(text *string, needle string) bool {
	return text != nil && strings.Contains(*text, needle)
}

func boundaryMarker(length int) string {
	return "<" + strings.Repeat("=", length) + ">"
}

// MarshalText serializes the archive, see [Archive.Serialize].
func (a *Archive) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Serialize(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText parses text into the archive, see [Parse].
func (a *Archive) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = *parsed
	return nil
}
