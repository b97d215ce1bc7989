package datatable

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV writes the full table (header first) to path as UTF-8
// RFC 4180 CSV, creating parent directories and overwriting any
// existing file.
func WriteCSV(t *Table, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write(t.Columns)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	err = w.WriteAll(t.Rows)
	if err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}

	return f.Close()
}
