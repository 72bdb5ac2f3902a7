package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GetTableAs reads every data row of T's table into T values, in sheet order.
// Columns are matched to fields by their ssql_header tag; unknown columns are ignored.
func GetTableAs[T any](db *DB) ([]T, error) {
	var model T
	t := reflect.TypeOf(model)
	tableName := TableName(model)

	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	if len(values) < 3 {
		// Need at least headers, types, and one data row
		return []T{}, nil
	}

	columnIndexes := make(map[string]int)
	for i, header := range values[0] {
		if headerStr, ok := header.(string); ok {
			columnIndexes[headerStr] = i
		}
	}

	fieldIndexes := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		if columnName := t.Field(i).Tag.Get("ssql_header"); columnName != "" {
			fieldIndexes[columnName] = i
		}
	}

	dataRows := values[2:]
	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		if isBlankRow(row) {
			continue
		}

		result := reflect.New(t).Elem()
		for columnName, colIdx := range columnIndexes {
			fieldIdx, ok := fieldIndexes[columnName]
			if !ok || colIdx >= len(row) || row[colIdx] == nil {
				continue
			}

			if err := setFieldValue(result.Field(fieldIdx), row[colIdx]); err != nil {
				return nil, fmt.Errorf("table %s row %d, column %s: %w", tableName, rowIdx+3, columnName, err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// isBlankRow reports whether every cell of a row is empty
func isBlankRow(row []interface{}) bool {
	for _, cell := range row {
		if cell != nil && fmt.Sprint(cell) != "" {
			return false
		}
	}
	return true
}

// setFieldValue converts a sheet cell value to the field's Go type and sets it
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	// Formatted reads return strings; unformatted reads may return numbers and booleans
	var cellStr string
	switch v := cellValue.(type) {
	case string:
		cellStr = v
	case float64:
		cellStr = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		cellStr = strconv.FormatBool(v)
	default:
		return fmt.Errorf("unsupported cell value type %T", cellValue)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
			return nil
		}
		intVal, err := strconv.ParseInt(cellStr, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
			return nil
		}
		floatVal, err := strconv.ParseFloat(cellStr, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float: %w", err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
			return nil
		}
		boolVal, err := strconv.ParseBool(strings.ToLower(cellStr))
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// InsertModels appends structs as rows to their table in a single call
func InsertModels[T any](db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(models))
	for _, model := range models {
		rows = append(rows, rowFromModel(model))
	}

	return db.InsertRows(TableName(models[0]), rows)
}

// InsertModel appends a struct as a row to its table
func InsertModel[T any](db *DB, model T) error {
	return InsertModels(db, []T{model})
}

// rowFromModel lists the tagged field values of model in column order
func rowFromModel(model interface{}) []interface{} {
	t := reflect.TypeOf(model)
	v := reflect.ValueOf(model)

	row := make([]interface{}, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() || t.Field(i).Tag.Get("ssql_header") == "" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}
	return row
}

// KeepLatest collapses rows sharing a key to the last one written, which is how
// updates are represented in an append-only table. Each key keeps the position of
// its first row.
func KeepLatest[T any](rows []T, key func(T) string) []T {
	positions := make(map[string]int, len(rows))
	latest := make([]T, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		if pos, seen := positions[k]; seen {
			latest[pos] = row
			continue
		}
		positions[k] = len(latest)
		latest = append(latest, row)
	}

	return latest
}
