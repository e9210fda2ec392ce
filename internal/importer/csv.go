package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// LoadCSV reads a UTF-8 comma-delimited file whose header names the table's
// columns (in any order) and returns typed rows in file order.
func LoadCSV(path string, table Table) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	colPos, err := headerPositions(records[0], table)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}

	rows := make([]Row, 0, len(records)-1)
	for lineNo, record := range records[1:] {
		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			raw := strings.TrimSpace(record[colPos[i]])
			value, err := parseValue(raw, col.Kind)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %s: %v", path, lineNo+2, col.Name, err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerPositions(header []string, table Table) ([]int, error) {
	positions := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		found := -1
		for j, name := range header {
			if strings.TrimSpace(name) == col.Name {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("header is missing column %q", col.Name)
		}
		positions[i] = found
	}
	return positions, nil
}

func parseValue(raw string, kind Kind) (any, error) {
	switch kind {
	case KindInt:
		return strconv.ParseInt(raw, 10, 64)
	case KindFloat:
		return strconv.ParseFloat(raw, 64)
	case KindDate:
		return time.Parse(dateLayout, raw)
	default:
		return raw, nil
	}
}
