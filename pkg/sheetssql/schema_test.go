package sheetssql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestDutyArea struct {
	ID       string `ssql_header:"id" ssql_type:"uuid"`
	Name     string `ssql_header:"name" ssql_type:"text"`
	Capacity int    `ssql_header:"capacity" ssql_type:"int"`
}

type TestDutySlot struct {
	ID        string `ssql_header:"id" ssql_type:"uuid"`
	TeacherID string `ssql_header:"teacher_id" ssql_type:"text"`
	AreaID    string `ssql_header:"area_id" ssql_type:"uuid"`
	Week      int    `ssql_header:"week" ssql_type:"int"`
	IsActive  bool   `ssql_header:"is_active" ssql_type:"bool"`
}

func TestSchemaFromModels_SingleModel(t *testing.T) {
	schema, err := SchemaFromModels(TestDutyArea{})
	require.NoError(t, err)

	require.Len(t, schema.Tables, 1)
	table := schema.Tables[0]

	assert.Equal(t, "test_duty_area", table.Name)
	assert.Equal(t, []Column{
		{Name: "id", Type: "uuid"},
		{Name: "name", Type: "text"},
		{Name: "capacity", Type: "int"},
	}, table.Columns)
}

func TestSchemaFromModels_MultipleModels(t *testing.T) {
	schema, err := SchemaFromModels(TestDutyArea{}, &TestDutySlot{})
	require.NoError(t, err)

	require.Len(t, schema.Tables, 2)
	assert.Equal(t, "test_duty_area", schema.Tables[0].Name)
	assert.Len(t, schema.Tables[0].Columns, 3)
	assert.Equal(t, "test_duty_slot", schema.Tables[1].Name)
	assert.Len(t, schema.Tables[1].Columns, 5)
}

func TestSchemaFromModels_Errors(t *testing.T) {
	type MissingHeader struct {
		ID string `ssql_type:"uuid"`
	}
	type MissingType struct {
		ID string `ssql_header:"id"`
	}
	type Empty struct{}
	type UnknownType struct {
		ID string `ssql_header:"id" ssql_type:"varchar"`
	}
	type WrongKind struct {
		Week string `ssql_header:"week" ssql_type:"int"`
	}
	type SharedHeader struct {
		CreatedAt string `ssql_header:"at" ssql_type:"datetime"`
		UpdatedAt string `ssql_header:"at" ssql_type:"datetime"`
	}

	tests := []struct {
		name     string
		model    interface{}
		contains string
	}{
		{"missing header tag", MissingHeader{}, "missing 'ssql_header' tag"},
		{"missing type tag", MissingType{}, "missing 'ssql_type' tag"},
		{"not a struct", "not a struct", "must be a struct"},
		{"no fields", Empty{}, "has no fields"},
		{"unknown column type", UnknownType{}, `unknown column type "varchar"`},
		{"type does not fit field", WrongKind{}, `column type "int" cannot hold a string`},
		{"duplicate header", SharedHeader{}, `share header "at"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SchemaFromModels(tt.model)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DutyArea", "duty_area"},
		{"DutySchedule", "duty_schedule"},
		{"UUID", "uuid"},
		{"HTTPStatus", "http_status"},
		{"TeacherID", "teacher_id"},
		{"simple", "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toSnakeCase(tt.input))
		})
	}
}

func TestNewDB_CreatesMissingTables(t *testing.T) {
	client := newFakeSheetsClient()
	schema, err := SchemaFromModels(TestDutyArea{}, TestDutySlot{})
	require.NoError(t, err)

	_, err = NewDB(client, "db-sheet", schema)
	require.NoError(t, err)

	assert.Equal(t, []string{"test_duty_area", "test_duty_slot"}, client.order)
	assert.Equal(t, [][]interface{}{
		{"id", "name", "capacity"},
		{"uuid", "text", "int"},
	}, client.tabs["test_duty_area"])
}

func TestNewDB_VerifiesExistingTables(t *testing.T) {
	client := newFakeSheetsClient()
	schema, err := SchemaFromModels(TestDutyArea{})
	require.NoError(t, err)

	_, err = NewDB(client, "db-sheet", schema)
	require.NoError(t, err)

	// Reconnecting finds the table and accepts it
	_, err = NewDB(client, "db-sheet", schema)
	assert.NoError(t, err)
}

func TestNewDB_SchemaMismatch(t *testing.T) {
	client := newFakeSheetsClient()
	client.tabs["test_duty_area"] = [][]interface{}{
		{"id", "title", "capacity"},
		{"uuid", "text", "int"},
	}
	client.order = []string{"test_duty_area"}

	schema, err := SchemaFromModels(TestDutyArea{})
	require.NoError(t, err)

	_, err = NewDB(client, "db-sheet", schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema mismatch")
	assert.Contains(t, err.Error(), "expected header 'name'")
}

func TestNewDB_WrongColumnType(t *testing.T) {
	client := newFakeSheetsClient()
	client.tabs["test_duty_area"] = [][]interface{}{
		{"id", "name", "capacity"},
		{"uuid", "text", "text"},
	}
	client.order = []string{"test_duty_area"}

	schema, err := SchemaFromModels(TestDutyArea{})
	require.NoError(t, err)

	_, err = NewDB(client, "db-sheet", schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected type 'int'")
}

func TestSchemaFromModels_SkipsUnexportedFields(t *testing.T) {
	type WithCache struct {
		ID    string `ssql_header:"id" ssql_type:"uuid"`
		cache map[string]int
	}

	schema, err := SchemaFromModels(WithCache{})
	require.NoError(t, err)
	assert.Equal(t, []Column{{Name: "id", Type: "uuid"}}, schema.Tables[0].Columns)
}

func TestSchemaFromModels_DuplicateTable(t *testing.T) {
	_, err := SchemaFromModels(TestDutyArea{}, &TestDutyArea{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table test_duty_area defined twice")
}

func TestNewDB_ReportsEveryMismatchedColumn(t *testing.T) {
	client := newFakeSheetsClient()
	client.tabs["test_duty_slot"] = [][]interface{}{
		{"id", "teacher", "area_id", "week", "active"},
		{"uuid", "text", "text", "int", "bool"},
	}
	client.order = []string{"test_duty_slot"}

	schema, err := SchemaFromModels(TestDutySlot{})
	require.NoError(t, err)

	_, err = NewDB(client, "db-sheet", schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column B: expected header 'teacher_id', got 'teacher'")
	assert.Contains(t, err.Error(), "column C (area_id): expected type 'uuid', got 'text'")
	assert.Contains(t, err.Error(), "column E: expected header 'is_active', got 'active'")
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{701, "ZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, columnLetter(tt.index))
		})
	}
}
