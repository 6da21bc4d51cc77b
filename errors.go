package hrx

import (
	"errors"
	"fmt"
)

var ErrNoBoundary = errors.New("hrx: no boundary marker in input")
var ErrBoundaryLength = errors.New("hrx: boundary length must be at least 1")

// Path validation failures. They are always wrapped in a [PathError]
// carrying the offending raw string.
var ErrEmptyComponent = errors.New("hrx: empty path component")
var ErrForbiddenCharacter = errors.New("hrx: forbidden character in path component")
var ErrReservedComponent = errors.New("hrx: reserved path component")

// PathError reports a raw string rejected by [ParsePath].
// It unwraps to one of [ErrEmptyComponent], [ErrForbiddenCharacter]
// or [ErrReservedComponent].
type PathError struct {
	Raw string
	Err error
}

func (p PathError) Error() string {
	return fmt.Sprintf("path %q: %s", p.Raw, p.Err)
}

func (p PathError) Unwrap() error {
	return p.Err
}

// ParseError reports a malformed document. Line is 1-based and points
// at the input line the parser gave up on.
type ParseError struct {
	Line    int
	Message string
}

func (p ParseError) Error() string {
	return fmt.Sprintf("parse line %d: %s", p.Line, p.Message)
}

// DuplicateEntryError reports two entries sharing one path. Both entries
// are retained in full for diagnostics.
type DuplicateEntryError struct {
	Path     Path
	Existing *Entry
	Dup      *Entry
}

func (d DuplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate entry %q", d.Path)
}

// FileAsDirectoryError reports an entry whose path descends through an
// existing File entry, which cannot have children.
type FileAsDirectoryError struct {
	Ancestor Path
	Child    Path
}

func (f FileAsDirectoryError) Error() string {
	return fmt.Sprintf("file %q is used as a directory of %q", f.Ancestor, f.Child)
}

// ContentLocation identifies which text of an archive triggered a
// [ContentError].
type ContentLocation int

const (
	InRootComment ContentLocation = iota
	InEntryComment
	InFileBody
)

func (c ContentLocation) String() string {
	switch c {
	case InRootComment:
		return "root comment"
	case InEntryComment:
		return "entry comment"
	case InFileBody:
		return "file body"
	default:
		return fmt.Sprintf("ContentLocation(%d)", int(c))
	}
}

// ContentError reports a comment or body containing a newline followed
// by the boundary marker, which would corrupt the serialized form.
// Path is the zero value when Location is [InRootComment].
type ContentError struct {
	Location ContentLocation
	Path     Path
}

func (c ContentError) Error() string {
	if c.Location == InRootComment {
		return "root comment contains the boundary"
	}
	return fmt.Sprintf("%s of %q contains the boundary", c.Location, c.Path)
}
