package sheetssql

import (
	"fmt"
	"strings"
)

// fakeSheetsClient keeps tabs in memory. A range of the form "tab!A1:ZZ2" returns the
// first two rows; anything else returns the whole tab.
type fakeSheetsClient struct {
	tabs      map[string][][]interface{}
	order     []string
	appendErr error
}

func newFakeSheetsClient() *fakeSheetsClient {
	return &fakeSheetsClient{tabs: map[string][][]interface{}{}}
}

func (f *fakeSheetsClient) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	tab, cells, _ := strings.Cut(sheetRange, "!")
	rows, ok := f.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("unable to parse range: %s", sheetRange)
	}
	if cells == "A1:ZZ2" && len(rows) > 2 {
		return rows[:2], nil
	}
	return rows, nil
}

func (f *fakeSheetsClient) AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if _, ok := f.tabs[sheetRange]; !ok {
		return fmt.Errorf("unable to parse range: %s", sheetRange)
	}
	for _, row := range values {
		// Mimic a formatted read back of RAW values
		stored := make([]interface{}, len(row))
		for i, cell := range row {
			switch v := cell.(type) {
			case bool:
				stored[i] = strings.ToUpper(fmt.Sprint(v))
			default:
				stored[i] = fmt.Sprint(v)
			}
		}
		f.tabs[sheetRange] = append(f.tabs[sheetRange], stored)
	}
	return nil
}

func (f *fakeSheetsClient) CreateSheet(spreadsheetID, sheetTitle string) (int64, error) {
	if _, ok := f.tabs[sheetTitle]; ok {
		return 0, fmt.Errorf("sheet %s already exists", sheetTitle)
	}
	f.tabs[sheetTitle] = [][]interface{}{}
	f.order = append(f.order, sheetTitle)
	return int64(len(f.order)), nil
}

func (f *fakeSheetsClient) ListSheets(spreadsheetID string) ([]string, error) {
	names := make([]string, 0, len(f.tabs))
	names = append(names, f.order...)
	return names, nil
}
