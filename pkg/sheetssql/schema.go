package sheetssql

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Column types understood by GetTableAs, with the Go kinds each may be read into
var columnKinds = map[string][]reflect.Kind{
	"text":     {reflect.String},
	"uuid":     {reflect.String},
	"datetime": {reflect.String},
	"json":     {reflect.String},
	"int":      {reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64},
	"float":    {reflect.Float32, reflect.Float64},
	"bool":     {reflect.Bool},
}

// SchemaFromModels builds a Schema by reflecting on struct definitions.
// Each struct is a table named after the struct in snake_case. Every exported field
// becomes a column and must carry `ssql_header:"column_name"` and
// `ssql_type:"column_type"` tags, where the type is one of the keys of columnKinds
// and fits the field's Go type.
func SchemaFromModels(models ...interface{}) (*Schema, error) {
	tables := make([]TableSchema, 0, len(models))
	seen := make(map[string]bool, len(models))

	for _, model := range models {
		table, err := tableSchemaFromModel(model)
		if err != nil {
			return nil, err
		}
		if seen[table.Name] {
			return nil, fmt.Errorf("table %s defined twice", table.Name)
		}
		seen[table.Name] = true
		tables = append(tables, table)
	}

	return &Schema{Tables: tables}, nil
}

// TableName returns the table a model type is stored in
func TableName(model interface{}) string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return toSnakeCase(t.Name())
}

func tableSchemaFromModel(model interface{}) (TableSchema, error) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return TableSchema{}, fmt.Errorf("model must be a struct, got %s", t.Kind())
	}

	table := TableSchema{Name: TableName(model)}
	headers := make(map[string]string)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		column, err := columnFromField(field)
		if err != nil {
			return TableSchema{}, fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		if other, dup := headers[column.Name]; dup {
			return TableSchema{}, fmt.Errorf("fields %s.%s and %s.%s share header %q", t.Name(), other, t.Name(), field.Name, column.Name)
		}
		headers[column.Name] = field.Name
		table.Columns = append(table.Columns, column)
	}

	if len(table.Columns) == 0 {
		return TableSchema{}, fmt.Errorf("struct %s has no fields", t.Name())
	}

	return table, nil
}

func columnFromField(field reflect.StructField) (Column, error) {
	header := field.Tag.Get("ssql_header")
	if header == "" {
		return Column{}, fmt.Errorf("missing 'ssql_header' tag")
	}

	typ := field.Tag.Get("ssql_type")
	if typ == "" {
		return Column{}, fmt.Errorf("missing 'ssql_type' tag")
	}

	kinds, known := columnKinds[typ]
	if !known {
		return Column{}, fmt.Errorf("unknown column type %q", typ)
	}
	fits := false
	for _, k := range kinds {
		if field.Type.Kind() == k {
			fits = true
			break
		}
	}
	if !fits {
		return Column{}, fmt.Errorf("column type %q cannot hold a %s", typ, field.Type.Kind())
	}

	return Column{Name: header, Type: typ}, nil
}

// toSnakeCase converts PascalCase to snake_case, keeping acronyms together
// ("DutySlot" -> "duty_slot", "HTTPStatus" -> "http_status")
func toSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// headerRows returns the header and type rows every table starts with
func (table TableSchema) headerRows() [][]interface{} {
	headers := make([]interface{}, len(table.Columns))
	types := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		headers[i] = col.Name
		types[i] = col.Type
	}
	return [][]interface{}{headers, types}
}

// columnLetter returns the spreadsheet letter of a zero-based column index
func columnLetter(i int) string {
	letter := ""
	for i >= 0 {
		letter = string(rune('A'+i%26)) + letter
		i = i/26 - 1
	}
	return letter
}

// ensureSchema verifies every table in the schema and creates the missing ones
func (db *DB) ensureSchema() error {
	existingSheets, err := db.client.ListSheets(db.spreadsheetID)
	if err != nil {
		return fmt.Errorf("failed to get existing sheets: %w", err)
	}

	sheetSet := make(map[string]bool, len(existingSheets))
	for _, sheet := range existingSheets {
		sheetSet[sheet] = true
	}

	for _, table := range db.schema.Tables {
		if !sheetSet[table.Name] {
			if err := db.createTable(table); err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.Name, err)
			}
			continue
		}
		if err := db.verifyTableSchema(table); err != nil {
			return fmt.Errorf("table %s schema mismatch: %w", table.Name, err)
		}
	}

	return nil
}

// verifyTableSchema compares a table's header and type rows with the schema and
// reports every differing column by its sheet letter
func (db *DB) verifyTableSchema(table TableSchema) error {
	values, err := db.client.GetValues(db.spreadsheetID, fmt.Sprintf("%s!A1:ZZ2", table.Name))
	if err != nil {
		return fmt.Errorf("failed to read table headers: %w", err)
	}
	if len(values) < 2 {
		return fmt.Errorf("table missing header or type row")
	}

	headers, types := values[0], values[1]
	if len(headers) != len(table.Columns) {
		return fmt.Errorf("expected %d columns, found %d", len(table.Columns), len(headers))
	}

	var errs []error
	for i, col := range table.Columns {
		if cell := cellAt(headers, i); cell != col.Name {
			errs = append(errs, fmt.Errorf("column %s: expected header '%s', got '%s'", columnLetter(i), col.Name, cell))
			continue
		}
		if cell := cellAt(types, i); cell != col.Type {
			errs = append(errs, fmt.Errorf("column %s (%s): expected type '%s', got '%s'", columnLetter(i), col.Name, col.Type, cell))
		}
	}

	return errors.Join(errs...)
}

func cellAt(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return fmt.Sprint(row[i])
}

// createTable adds a sheet for the table and writes its header and type rows
func (db *DB) createTable(table TableSchema) error {
	if _, err := db.client.CreateSheet(db.spreadsheetID, table.Name); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := db.client.AppendRows(db.spreadsheetID, table.Name, table.headerRows()); err != nil {
		return fmt.Errorf("failed to write headers and types: %w", err)
	}

	return nil
}
