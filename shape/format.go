package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapezlab/shapeenum/shapecfg"
)

// ErrBadTextLength is returned when a textual shape's length matches
// neither the short form nor the long form for the given Config.
var ErrBadTextLength = errors.New("shape: text length matches neither the short nor the long form")

// cellChar maps a Cell to its single-character short-form representation.
func cellChar(c Cell) byte {
	switch c {
	case CellEmpty:
		return '-'
	case CellPin:
		return 'P'
	case CellCrystal:
		return 'c'
	default:
		return 'S'
	}
}

// charCell maps a short-form character (or a long-form cell's first
// character) to a Cell: '-' Empty, 'P' Pin, 'c' Crystal, anything else
// Shape.
func charCell(b byte) Cell {
	switch b {
	case '-':
		return CellEmpty
	case 'P':
		return CellPin
	case 'c':
		return CellCrystal
	default:
		return CellShape
	}
}

// FormatShape renders s in the short textual form: per-layer strings of
// length P, layer 0 first, joined by ':'.
func FormatShape(cfg shapecfg.Config, s Shape) string {
	layers := make([]string, cfg.L)
	for l := 0; l < cfg.L; l++ {
		var sb strings.Builder
		for p := 0; p < cfg.P; p++ {
			sb.WriteByte(cellChar(Get(cfg, s, l, p)))
		}
		layers[l] = sb.String()
	}

	return strings.Join(layers, ":")
}

// ParseShape parses a textual shape in either the short form (one
// character per cell) or the long form (two characters per cell, the
// second a color that is ignored) into a Shape under cfg.
//
// Returns ErrBadTextLength if the layer count does not match cfg.L, or if
// any layer's length matches neither P nor 2*P.
func ParseShape(cfg shapecfg.Config, text string) (Shape, error) {
	groups := strings.Split(text, ":")
	if len(groups) != cfg.L {
		return 0, fmt.Errorf("%w: got %d layers, want %d", ErrBadTextLength, len(groups), cfg.L)
	}

	var s Shape
	for l, g := range groups {
		switch len(g) {
		case cfg.P: // short form: one character per cell
			for p := 0; p < cfg.P; p++ {
				s = Set(cfg, s, l, p, charCell(g[p]))
			}
		case 2 * cfg.P: // long form: two characters per cell, second ignored
			for p := 0; p < cfg.P; p++ {
				s = Set(cfg, s, l, p, charCell(g[2*p]))
			}
		default:
			return 0, fmt.Errorf("%w: layer %d has length %d, want %d or %d",
				ErrBadTextLength, l, len(g), cfg.P, 2*cfg.P)
		}
	}

	return s, nil
}
