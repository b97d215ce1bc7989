package datatable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Table is an immutable snapshot of one dataset fetch: an ordered
// header plus one row of stringified scalar cells per source record.
// Cells are strings because both exports (CSV and the rendered image)
// only ever show text.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Truncate returns a view of at most n leading rows sharing the same
// header. Negative n means no truncation.
func (t *Table) Truncate(n int) *Table {
	if n < 0 || n >= len(t.Rows) {
		return t
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// FromJSONRows materializes a JSON array of row objects into a Table.
// The header is the union of all observed keys, ordered by first
// encounter, so the column layout matches what the API sent. A record
// missing a key present in other records gets an empty cell.
func FromJSONRows(data []byte) (*Table, error) {
	columns, err := scanColumnOrder(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []map[string]any
	err = dec.Decode(&records)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = cellString(record[col])
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// encoding/json loses object key order in maps, so column order is
// recovered with a separate token scan over the same bytes.
func scanColumnOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("row list is not a JSON array")
	}

	var columns []string
	seen := map[string]bool{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("row entry is not a JSON object")
		}

		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("row object key is not a string")
			}
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
			err = skipValue(dec)
			if err != nil {
				return nil, err
			}
		}

		// closing '}'
		_, err = dec.Token()
		if err != nil {
			return nil, err
		}
	}

	return columns, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		// nested values never appear in well-formed row objects but
		// shouldn't crash the export when they do
		return fmt.Sprint(v)
	}
}
