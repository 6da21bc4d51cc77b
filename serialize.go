package hrx

import (
	"fmt"
	"io"
)

// Serialize writes the archive in text form to w.
//
// Content is validated up front: a [ContentError] aborts before anything
// is written. Write failures abort mid way with the wrapped writer error
// and may leave w holding a partial prefix of the output; such output is
// not recoverable and should be discarded.
//
// Serializing the result of a successful [Parse] reproduces the parsed
// text byte for byte, as long as the boundary length was not changed in
// between.
func (a *Archive) Serialize(w io.Writer) error {
	if err := a.ValidateContent(); err != nil {
		return err
	}

	marker := boundaryMarker(a.boundaryLength)
	out := stickyWriter{w: w}

	// a marker line is separated from preceding section text by one
	// newline; sep tracks whether a section was just emitted
	sep := false

	if a.Comment != nil {
		out.WriteString(marker + "\n")
		out.WriteString(*a.Comment)
		sep = true
	}

	for path, entry := range a.Entries.All() {
		if entry.Comment != nil {
			if sep {
				out.WriteString("\n")
			}
			out.WriteString(marker + "\n")
			out.WriteString(*entry.Comment)
			sep = true
		}

		if sep {
			out.WriteString("\n")
		}

		suffix := ""
		if _, isDir := entry.Data.(Directory); isDir {
			suffix = "/"
		}
		out.WriteString(marker + " " + path.raw + suffix + "\n")
		sep = false

		if file, ok := entry.Data.(File); ok && file.Body != nil {
			out.WriteString(*file.Body)
			sep = true
		}
	}

	if out.err != nil {
		return fmt.Errorf("write archive: %w", out.err)
	}

	return nil
}

// stickyWriter keeps the first error of the underlying writer and turns
// every later write into a no-op.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(text string) {
	if s.err != nil {
		return
	}

	_, s.err = io.WriteString(s.w, text)
}
