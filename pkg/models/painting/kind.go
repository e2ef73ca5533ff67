package painting

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int8

const (
	Canvas Kind = iota
	Tree
	River
	Cloud
	Mountain
)

var ErrUnknownKind = errors.New("unknown kind")

var Kinds = [...]Kind{Tree, River, Cloud, Mountain}

var kindNames = map[Kind]string{
	Canvas:   "canvas",
	Tree:     "tree",
	River:    "river",
	Cloud:    "cloud",
	Mountain: "mountain",
}

var kindGlyphs = map[Kind]string{
	Canvas:   ".",
	Tree:     "🌲",
	River:    "🌊",
	Cloud:    "☁️",
	Mountain: "🗻",
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Canvas, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if n, c := kindNames[k]; c {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Glyph is the single cell rendering of k.
func (k Kind) Glyph() string {
	return kindGlyphs[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, c := kindNames[k]; !c {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
