package sheet

import (
	"context"
	"fmt"
	"sync"
)

// MemoryTable keeps the grid in process memory.
type MemoryTable struct {
	mu   sync.RWMutex
	rows [][]string
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{}
}

func (t *MemoryTable) EnsureHeader(_ context.Context, header []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.rows) == 0 {
		t.rows = append(t.rows, append([]string(nil), header...))
	}
	return nil
}

func (t *MemoryTable) AppendRow(_ context.Context, values []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

func (t *MemoryTable) AllRecords(_ context.Context) ([]Record, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return buildRecords(t.rows), nil
}

func (t *MemoryTable) Find(_ context.Context, value string, col int) (*Cell, error) {
	if value == "" {
		return nil, ErrCellNotFound
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	for r := 1; r < len(t.rows); r++ {
		for c, v := range t.rows[r] {
			if col > 0 && c+1 != col {
				continue
			}
			if v == value {
				return &Cell{Row: r + 1, Col: c + 1, Value: v}, nil
			}
		}
	}
	return nil, ErrCellNotFound
}

func (t *MemoryTable) UpdateCell(_ context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("sheet: invalid cell %d,%d", row, col)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.rows) < row {
		t.rows = append(t.rows, nil)
	}
	for len(t.rows[row-1]) < col {
		t.rows[row-1] = append(t.rows[row-1], "")
	}
	t.rows[row-1][col-1] = value
	return nil
}
