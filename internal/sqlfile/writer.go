// Package sqlfile renders a fixture dataset as a text file of multi-row
// INSERT statements, one statement per table, in dependency order.
package sqlfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Raw is an SQL expression emitted verbatim, without quoting.
type Raw string

// Table is one INSERT statement: a fixed column list and ordered rows.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Render produces the full file: a header comment identifying the run, then
// one INSERT block per table. Tables with no rows are skipped rather than
// emitting a VALUES clause with nothing in it.
func Render(tables []Table, runID string, generatedAt time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "-- bankgen run %s\n", runID)
	fmt.Fprintf(&b, "-- generated at %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	for _, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		writeTable(&b, t)
	}
	return []byte(b.String())
}

// WriteFile renders the tables and writes the result to path.
func WriteFile(path string, tables []Table, runID string, generatedAt time.Time) error {
	if err := os.WriteFile(path, Render(tables, runID, generatedAt), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeTable(b *strings.Builder, t Table) {
	quoted := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		quoted[i] = "`" + col + "`"
	}
	fmt.Fprintf(b, "INSERT INTO `%s` (%s) VALUES\n", t.Name, strings.Join(quoted, ", "))

	for i, row := range t.Rows {
		values := make([]string, len(row))
		for j, v := range row {
			values[j] = formatValue(v)
		}
		b.WriteString("(" + strings.Join(values, ", ") + ")")
		if i < len(t.Rows)-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteString(";\n\n")
}

// formatValue renders one SQL literal: strings double-quoted, numerics bare,
// nil as NULL, Raw verbatim.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case Raw:
		return string(val)
	case string:
		return `"` + strings.ReplaceAll(val, `"`, `\"`) + `"`
	case *string:
		if val == nil {
			return "NULL"
		}
		return formatValue(*val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
