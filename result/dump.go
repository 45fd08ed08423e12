package result

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// Dump writes a fixed binary layout:
//
//	u32  n_halves
//	Shape[n_halves]   // each 2*L*P bits, stored in a cfg.WordSize()-bit word
//	u32  n_shapes
//	Shape[n_shapes]
//
// Halves and Shapes must already be sorted ascending (New does this).
// The word size (32 or 64 bits) is cfg.WordSize(); endianness is the
// host's native order — this is a local artifact, not a portable one.
func (r *Result) Dump(w io.Writer, cfg shapecfg.Config) error {
	if err := writeShapes(w, cfg, r.Halves); err != nil {
		return fmt.Errorf("result: dump halves: %w", err)
	}
	if err := writeShapes(w, cfg, r.Shapes); err != nil {
		return fmt.Errorf("result: dump shapes: %w", err)
	}

	return nil
}

func writeShapes(w io.Writer, cfg shapecfg.Config, shapes []shape.Shape) error {
	if err := binary.Write(w, binary.NativeEndian, uint32(len(shapes))); err != nil {
		return err
	}

	for _, s := range shapes {
		if cfg.WordSize() == 32 {
			if err := binary.Write(w, binary.NativeEndian, uint32(s)); err != nil {
				return err
			}
			continue
		}
		if err := binary.Write(w, binary.NativeEndian, uint64(s)); err != nil {
			return err
		}
	}

	return nil
}

// Load reads back a Result previously written by Dump, for the same
// cfg used to produce it. Quarters is left empty: the binary format
// persists only halves and shapes.
func Load(r io.Reader, cfg shapecfg.Config) (*Result, error) {
	halves, err := readShapes(r, cfg)
	if err != nil {
		return nil, fmt.Errorf("result: load halves: %w", err)
	}
	shapes, err := readShapes(r, cfg)
	if err != nil {
		return nil, fmt.Errorf("result: load shapes: %w", err)
	}

	return &Result{Halves: halves, Shapes: shapes}, nil
}

func readShapes(r io.Reader, cfg shapecfg.Config) ([]shape.Shape, error) {
	var n uint32
	if err := binary.Read(r, binary.NativeEndian, &n); err != nil {
		return nil, err
	}

	out := make([]shape.Shape, n)
	for i := range out {
		if cfg.WordSize() == 32 {
			var v uint32
			if err := binary.Read(r, binary.NativeEndian, &v); err != nil {
				return nil, err
			}
			out[i] = shape.Shape(v)
			continue
		}
		var v uint64
		if err := binary.Read(r, binary.NativeEndian, &v); err != nil {
			return nil, err
		}
		out[i] = shape.Shape(v)
	}

	return out, nil
}
