package sheet

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"quentinhas/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSqlite(t *testing.T, dsn string, maxConns int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(maxConns)
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.AutoMigrate(&model.SheetCell{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newGormTable(t *testing.T, name string) *GormTable {
	t.Helper()
	return NewGormTable(openSqlite(t, "file::memory:", 1), name)
}

func tables(t *testing.T) map[string]Table {
	return map[string]Table{
		"memory": NewMemoryTable(),
		"gorm":   newGormTable(t, "Pedidos"),
	}
}

func TestTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, table := range tables(t) {
		t.Run(name, func(t *testing.T) {
			if err := table.EnsureHeader(ctx, []string{"ID", "Nome", "Status"}); err != nil {
				t.Fatal(err)
			}
			// a second call must not duplicate the header
			if err := table.EnsureHeader(ctx, []string{"ID", "Nome", "Status"}); err != nil {
				t.Fatal(err)
			}
			if err := table.AppendRow(ctx, []string{"A-1", "Maria", "Pendente"}); err != nil {
				t.Fatal(err)
			}
			if err := table.AppendRow(ctx, []string{"B-2", "João"}); err != nil {
				t.Fatal(err)
			}

			records, err := table.AllRecords(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 2 {
				t.Fatalf("got %d records, want 2", len(records))
			}
			if records[0].Row != 2 || records[0].Get("Nome") != "Maria" {
				t.Errorf("first record = %+v", records[0])
			}
			if records[1].Get("Status") != "" {
				t.Errorf("missing trailing cell should read empty, got %q", records[1].Get("Status"))
			}

			cell, err := table.Find(ctx, "B-2", 1)
			if err != nil {
				t.Fatal(err)
			}
			if cell.Row != 3 || cell.Col != 1 {
				t.Errorf("cell = %+v, want row 3 col 1", cell)
			}

			if err := table.UpdateCell(ctx, cell.Row, 3, "Aprovado"); err != nil {
				t.Fatal(err)
			}
			records, _ = table.AllRecords(ctx)
			if records[1].Get("Status") != "Aprovado" {
				t.Errorf("status = %q, want Aprovado", records[1].Get("Status"))
			}
		})
	}
}

func TestTableFindMiss(t *testing.T) {
	ctx := context.Background()
	for name, table := range tables(t) {
		t.Run(name, func(t *testing.T) {
			table.EnsureHeader(ctx, []string{"ID", "Nome"})
			table.AppendRow(ctx, []string{"X-1", "Maria"})

			if _, err := table.Find(ctx, "nope", 0); !errors.Is(err, ErrCellNotFound) {
				t.Errorf("err = %v, want ErrCellNotFound", err)
			}
			// value exists but outside the requested column
			if _, err := table.Find(ctx, "Maria", 1); !errors.Is(err, ErrCellNotFound) {
				t.Errorf("err = %v, want ErrCellNotFound", err)
			}
			if _, err := table.Find(ctx, "", 0); !errors.Is(err, ErrCellNotFound) {
				t.Errorf("empty value should never match, got %v", err)
			}
		})
	}
}

func TestFindSkipsHeader(t *testing.T) {
	ctx := context.Background()
	for name, table := range tables(t) {
		t.Run(name, func(t *testing.T) {
			table.EnsureHeader(ctx, []string{"ID", "Status"})
			table.AppendRow(ctx, []string{"A-1", "Pendente"})

			if _, err := table.Find(ctx, "ID", 1); !errors.Is(err, ErrCellNotFound) {
				t.Errorf("header cell matched: err = %v", err)
			}
			if _, err := table.Find(ctx, "Status", 0); !errors.Is(err, ErrCellNotFound) {
				t.Errorf("header cell matched: err = %v", err)
			}
			cell, err := table.Find(ctx, "Pendente", 0)
			if err != nil || cell.Row != 2 {
				t.Errorf("cell = %+v, err = %v", cell, err)
			}
		})
	}
}

func TestGormConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "sheets.db") + "?_busy_timeout=5000"
	table := NewGormTable(openSqlite(t, dsn, 4), "Pedidos")
	if err := table.EnsureHeader(ctx, []string{"ID"}); err != nil {
		t.Fatal(err)
	}

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- table.AppendRow(ctx, []string{fmt.Sprintf("P-%02d", i)})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("append: %v", err)
		}
	}

	records, err := table.AllRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != writers {
		t.Fatalf("got %d records, want %d", len(records), writers)
	}
	seen := map[string]bool{}
	for _, rec := range records {
		id := rec.Get("ID")
		if id == "" || seen[id] {
			t.Errorf("row %d holds %q", rec.Row, id)
		}
		seen[id] = true
	}
}
