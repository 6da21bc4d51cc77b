package hrx

import (
	"encoding"
	"strings"
)

// Path is a validated archive entry path.
//
// A path consists of `/`-separated components. Every component is non-empty,
// contains only characters above U+001F excluding `/`, `\` and `:`, and is
// neither "." nor "..". The only way to obtain a Path is [ParsePath] (or
// parsing an archive), so holding one proves validity. The zero Path is not
// a valid path.
type Path struct {
	raw string
}

var _ encoding.TextMarshaler = Path{}
var _ encoding.TextUnmarshaler = &Path{}

// ParsePath validates raw and wraps it into a [Path].
// Failures are reported as a [PathError].
func ParsePath(raw string) (Path, error) {
	if err := checkPathSyntax(raw); err != nil {
		return Path{}, PathError{Raw: raw, Err: err}
	}

	return Path{raw: raw}, nil
}

func checkPathSyntax(raw string) error {
	for _, component := range strings.Split(raw, "/") {
		if component == "" {
			return ErrEmptyComponent
		}

		if strings.ContainsFunc(component, isForbiddenPathRune) {
			return ErrForbiddenCharacter
		}

		if component == "." || component == ".." {
			return ErrReservedComponent
		}
	}

	return nil
}

func isForbiddenPathRune(r rune) bool {
	// the slash never reaches this check, components are split on it
	return r <= '\x1f' || r == '\\' || r == ':'
}

// String returns the path as it was given to [ParsePath].
func (p Path) String() string {
	return p.raw
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
