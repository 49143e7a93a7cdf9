package sheet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"quentinhas/model"

	"gorm.io/gorm"
)

// appendAttempts bounds the retries when another writer claimed the same
// row number first.
const appendAttempts = 5

// writeMu serializes writes within the process. SQLite allows a single writer,
// and appends compute the next row number from MAX(row_num).
var writeMu sync.Mutex

// GormTable stores a worksheet as one database row per cell.
type GormTable struct {
	db    *gorm.DB
	sheet string
}

func NewGormTable(db *gorm.DB, sheet string) *GormTable {
	return &GormTable{db: db, sheet: sheet}
}

func (t *GormTable) EnsureHeader(ctx context.Context, header []string) error {
	writeMu.Lock()
	defer writeMu.Unlock()
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SheetCell{}).Where("sheet = ?", t.sheet).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(t.rowCells(1, header)).Error
	})
}

// AppendRow writes values below the last row. Row numbers are unique per
// sheet, so a writer in another process that wins the race makes the insert
// fail with a duplicate key and the append is retried on the next row.
func (t *GormTable) AppendRow(ctx context.Context, values []string) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	var err error
	for attempt := 1; attempt <= appendAttempts; attempt++ {
		err = t.appendOnce(ctx, values)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
		}
	}
	return fmt.Errorf("sheet %s: append gave up after %d attempts: %w", t.sheet, appendAttempts, err)
}

func (t *GormTable) appendOnce(ctx context.Context, values []string) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&model.SheetCell{}).
			Where("sheet = ?", t.sheet).
			Select("COALESCE(MAX(row_num), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		cells := t.rowCells(last+1, values)
		if len(cells) == 0 {
			return nil
		}
		return tx.Create(cells).Error
	})
}

func (t *GormTable) AllRecords(ctx context.Context) ([]Record, error) {
	var cells []model.SheetCell
	if err := t.db.WithContext(ctx).
		Where("sheet = ?", t.sheet).
		Order("row_num, col_num").
		Find(&cells).Error; err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	last := cells[len(cells)-1].RowNum
	grid := make([][]string, last)
	for _, cell := range cells {
		row := grid[cell.RowNum-1]
		for len(row) < cell.ColNum {
			row = append(row, "")
		}
		row[cell.ColNum-1] = cell.Value
		grid[cell.RowNum-1] = row
	}
	return buildRecords(grid), nil
}

func (t *GormTable) Find(ctx context.Context, value string, col int) (*Cell, error) {
	if value == "" {
		return nil, ErrCellNotFound
	}
	query := t.db.WithContext(ctx).Where("sheet = ? AND row_num > 1 AND value = ?", t.sheet, value)
	if col > 0 {
		query = query.Where("col_num = ?", col)
	}
	var cell model.SheetCell
	if err := query.Order("row_num, col_num").First(&cell).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCellNotFound
		}
		return nil, err
	}
	return &Cell{Row: cell.RowNum, Col: cell.ColNum, Value: cell.Value}, nil
}

func (t *GormTable) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("sheet: invalid cell %d,%d", row, col)
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cell model.SheetCell
		err := tx.Where("sheet = ? AND row_num = ? AND col_num = ?", t.sheet, row, col).First(&cell).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.SheetCell{Sheet: t.sheet, RowNum: row, ColNum: col, Value: value}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&cell).Update("value", value).Error
	})
}

func (t *GormTable) rowCells(row int, values []string) []model.SheetCell {
	cells := make([]model.SheetCell, 0, len(values))
	for i, v := range values {
		cells = append(cells, model.SheetCell{Sheet: t.sheet, RowNum: row, ColNum: i + 1, Value: v})
	}
	return cells
}
