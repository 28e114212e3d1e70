package state

// MoveDown advances the selection, wrapping from the last entry to the first.
func (n *Navigation) MoveDown(count int) bool {
	if count <= 0 {
		n.Selected = 0
		return false
	}
	old := n.Selected
	n.Selected = (n.Selected + 1) % count
	return old != n.Selected
}

// MoveUp retreats the selection, wrapping from the first entry to the last.
func (n *Navigation) MoveUp(count int) bool {
	if count <= 0 {
		n.Selected = 0
		return false
	}
	old := n.Selected
	n.Selected = (n.Selected + count - 1) % count
	return old != n.Selected
}

// Clamp keeps the selection inside a listing of count entries, for when the
// directory shrank since the selection was made.
func (n *Navigation) Clamp(count int) {
	if count <= 0 || n.Selected < 0 {
		n.Selected = 0
		return
	}
	if n.Selected >= count {
		n.Selected = count - 1
	}
}

// Viewport tracks which slice of a long listing is on screen.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so cursor stays within maxVisible rows of
// a listing holding total entries.
func (v *Viewport) EnsureVisible(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
	}
}
