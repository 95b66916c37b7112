package entity

import "fmt"

type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "available"
	SeatStatusUnavailable SeatStatus = "unavailable"
)

type Seat struct {
	Label  string
	Status SeatStatus
}

const rowLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SeatMap is the in-session seat grid. Seats are generated fresh per
// booking session; there is no server-side seat inventory to fetch.
// The selected set preserves insertion order for stable summaries.
type SeatMap struct {
	Rows  int
	Cols  int
	Seats []Seat

	selected []string
	index    map[string]int
}

// NewSeatMap generates a rows x cols grid labeled {RowLetter}{ColumnNumber},
// all seats available. Rows beyond 'Z' are not supported.
func NewSeatMap(rows, cols int) (*SeatMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	if rows > len(rowLetters) {
		return nil, fmt.Errorf("too many rows: %d", rows)
	}

	m := &SeatMap{
		Rows:  rows,
		Cols:  cols,
		Seats: make([]Seat, 0, rows*cols),
		index: make(map[string]int, rows*cols),
	}
	for i := 0; i < rows; i++ {
		for j := 1; j <= cols; j++ {
			label := fmt.Sprintf("%c%d", rowLetters[i], j)
			m.index[label] = len(m.Seats)
			m.Seats = append(m.Seats, Seat{Label: label, Status: SeatStatusAvailable})
		}
	}
	return m, nil
}

// Toggle flips the seat's membership in the selected set. Unavailable
// seats are a no-op; unknown labels are an error.
func (m *SeatMap) Toggle(label string) error {
	i, ok := m.index[label]
	if !ok {
		return fmt.Errorf("unknown seat %q", label)
	}
	if m.Seats[i].Status == SeatStatusUnavailable {
		return nil
	}

	for pos, sel := range m.selected {
		if sel == label {
			m.selected = append(m.selected[:pos], m.selected[pos+1:]...)
			return nil
		}
	}
	m.selected = append(m.selected, label)
	return nil
}

// Selected returns the selected seat labels in insertion order.
func (m *SeatMap) Selected() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

func (m *SeatMap) SelectedCount() int {
	return len(m.selected)
}

// Total is count x unit price. No per-seat tiers, no discounts.
func (m *SeatMap) Total(unitPrice int) int {
	return len(m.selected) * unitPrice
}

// IsSelected reports membership in the selected set.
func (m *SeatMap) IsSelected(label string) bool {
	for _, sel := range m.selected {
		if sel == label {
			return true
		}
	}
	return false
}
