package shape

// Cell is the occupancy type of a single (layer, part) position: one of
// four values packed into 2 bits.
type Cell uint8

const (
	// CellEmpty is an unoccupied cell (packed value 0b00).
	CellEmpty Cell = iota
	// CellPin is a pin — carries vertical support only, never horizontal
	// (packed value 0b01).
	CellPin
	// CellShape is a generic shape block (packed value 0b10).
	CellShape
	// CellCrystal is a crystal block, which additionally propagates
	// support downward through crystal-to-crystal contact (packed 0b11).
	CellCrystal
)

// String renders a Cell for diagnostics and %v formatting.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellPin:
		return "Pin"
	case CellShape:
		return "Shape"
	case CellCrystal:
		return "Crystal"
	default:
		return "Invalid"
	}
}
