package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// Len returns the rune length of the text, counting one rune per line break.
func (b *Buffer) Len() int {
	total := 0
	for row, line := range b.lines {
		total += len(line)
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

// PosFromRuneOffset maps a global rune offset to a position. With
// OffsetError, out-of-range offsets report false.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// RuneOffsetFromPos maps a position to a global rune offset. With
// OffsetError, positions outside the text report false.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col, true
}

func clampOffset(off, limit int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > limit {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, limit), true
	default:
		return 0, false
	}
}
