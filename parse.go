package hrx

import (
	"strings"
)

// Parse parses a document into an [Archive].
//
// The boundary length is discovered from the first marker in the input
// and kept for the whole document; [ErrNoBoundary] is returned when no
// marker exists at all. Parsing is atomic, a failed parse returns only
// the error. Malformed documents fail with a [ParseError], bad entry
// paths with a [PathError], and structural conflicts with a
// [DuplicateEntryError] or [FileAsDirectoryError].
func Parse(text string) (*Archive, error) {
	width, ok := discoverBoundaryLength(text)
	if !ok {
		return nil, ErrNoBoundary
	}

	p := parser{src: text, marker: boundaryMarker(width)}
	return p.archive(width)
}

// discoverBoundaryLength finds the first boundary marker at the start of
// the text or directly after a newline and returns its `=` count.
func discoverBoundaryLength(text string) (int, bool) {
	pos := 0
	for {
		if width, ok := markerWidthAt(text, pos); ok {
			return width, true
		}

		next := strings.IndexByte(text[pos:], '\n')
		if next < 0 {
			return 0, false
		}

		pos += next + 1
	}
}

func markerWidthAt(text string, pos int) (int, bool) {
	if pos >= len(text) || text[pos] != '<' {
		return 0, false
	}

	width := 0
	for pos++; pos < len(text) && text[pos] == '='; pos++ {
		width++
	}

	if width == 0 || pos >= len(text) || text[pos] != '>' {
		return 0, false
	}

	return width, true
}

type parser struct {
	src    string
	marker string
	pos    int
}

func (p *parser) archive(boundaryLength int) (*Archive, error) {
	if !strings.HasPrefix(p.src, p.marker) {
		return nil, ParseError{Line: 1, Message: "expected boundary marker"}
	}

	arch := &Archive{boundaryLength: boundaryLength}

	// a comment block waiting for the entry it annotates
	var pending *string
	var pendingLine int

	first := true
	for p.pos < len(p.src) {
		lineNo := p.line()

		rawPath, hasPath, err := p.markerLine()
		if err != nil {
			return nil, err
		}

		if !hasPath {
			text, present := p.readSection()
			if !present {
				return nil, ParseError{Line: lineNo, Message: "comment block has no content"}
			}

			switch {
			case first:
				arch.Comment = &text
			case pending != nil:
				return nil, ParseError{Line: pendingLine, Message: "comment block not followed by an entry"}
			default:
				pending, pendingLine = &text, lineNo
			}

			first = false
			continue
		}

		isDir := strings.HasSuffix(rawPath, "/")
		rawPath = strings.TrimSuffix(rawPath, "/")

		path, err := ParsePath(rawPath)
		if err != nil {
			return nil, err
		}

		body := p.bodyOf(p.readSection())

		var data EntryData
		if isDir {
			if body != nil {
				return nil, ParseError{Line: lineNo, Message: "directory entry cannot have a body"}
			}
			data = Directory{}
		} else {
			data = File{Body: body}
		}

		entry := &Entry{Comment: pending, Data: data}
		pending = nil
		first = false

		if existing, ok := arch.Entries.Get(path.raw); ok {
			return nil, DuplicateEntryError{Path: path, Existing: existing, Dup: entry}
		}

		if ancestor, ok := fileAncestorOf(&arch.Entries, path); ok {
			return nil, FileAsDirectoryError{Ancestor: ancestor, Child: path}
		}

		arch.Entries.Set(path, entry)
	}

	if pending != nil {
		return nil, ParseError{Line: pendingLine, Message: "comment block not followed by an entry"}
	}

	return arch, nil
}

// markerLine consumes one boundary marker line. It returns the raw path
// of a path bearing line, or hasPath=false for a bare line introducing a
// comment.
func (p *parser) markerLine() (rawPath string, hasPath bool, err error) {
	// INVARIANT: the loop only reaches this with the marker at p.pos
	p.pos += len(p.marker)

	if p.pos == len(p.src) {
		return "", false, ParseError{Line: p.line(), Message: "unexpected end of input"}
	}

	switch p.src[p.pos] {
	case '\n':
		p.pos++
		return "", false, nil

	case ' ':
		p.pos++
		idx := strings.IndexByte(p.src[p.pos:], '\n')
		if idx < 0 {
			return "", false, ParseError{Line: p.line(), Message: "unexpected end of input"}
		}

		rawPath = p.src[p.pos : p.pos+idx]
		p.pos += idx + 1
		return rawPath, true, nil

	default:
		return "", false, ParseError{Line: p.line(), Message: "malformed boundary line"}
	}
}

// readSection consumes the text between the current position and the
// newline introducing the next marker line, or the end of input. present
// is false when the next marker line follows immediately, i.e. the block
// has no section at all.
func (p *parser) readSection() (text string, present bool) {
	rest := p.src[p.pos:]

	if strings.HasPrefix(rest, p.marker) {
		return "", false
	}

	if idx := strings.Index(rest, "\n"+p.marker); idx >= 0 {
		p.pos += idx + 1
		return rest[:idx], true
	}

	p.pos = len(p.src)
	return rest, true
}

// bodyOf turns a section into a file body. A missing section and an
// empty section at the end of input both mean no body at all.
func (p *parser) bodyOf(text string, present bool) *string {
	if !present {
		return nil
	}

	if text == "" && p.pos == len(p.src) {
		return nil
	}

	return &text
}

func (p *parser) line() int {
	return 1 + strings.Count(p.src[:p.pos], "\n")
}

// fileAncestorOf returns the first strict ancestor of path that already
// exists as a File entry. Files cannot have children.
func fileAncestorOf(entries *Entries, path Path) (Path, bool) {
	raw := path.raw
	for idx := 0; idx < len(raw); idx++ {
		if raw[idx] != '/' {
			continue
		}

		entry, ok := entries.Get(raw[:idx])
		if !ok {
			continue
		}

		if _, isFile := entry.Data.(File); isFile {
			return Path{raw: raw[:idx]}, true
		}
	}

	return Path{}, false
}
