package zeirishi

import "context"

// SheetColumns is the export column order. DetailURL is internal and has no
// column.
var SheetColumns = []string{
	"県",
	"事務所名",
	"代表者名",
	"電話番号",
	"メールアドレス",
	"住所",
	"登録年日（平成/令和）",
}

// Sheet is one labeled table of exported records.
type Sheet struct {
	Name    string
	Records []*Record
}

// Workbook is the complete export for one scrape run.
type Workbook struct {
	Sheets []Sheet
}

// BuildWorkbook assembles the export for one prefecture: records are
// deduplicated by (office name, phone), partitioned by email presence, and
// laid out as two sheets with the no-email sheet first.
func BuildWorkbook(pref string, records []*Record) Workbook {
	withEmail, withoutEmail := Partition(Dedupe(records))
	return Workbook{
		Sheets: []Sheet{
			{Name: pref + "_全件_メールなしのみ", Records: withoutEmail},
			{Name: pref + "_メールあり", Records: withEmail},
		},
	}
}

// ExportRow renders the record's cells in SheetColumns order.
func (r *Record) ExportRow() []string {
	return []string{
		r.Prefecture,
		r.OfficeName.String(),
		r.Representative.String(),
		r.Phone.String(),
		r.Email.Export(),
		r.Address.String(),
		r.RegistrationEra,
	}
}

// WorkbookWriter persists a workbook to a file.
type WorkbookWriter interface {
	// WriteWorkbook writes wb to path, one sheet per Workbook sheet.
	// An unwritable path is a fatal error; nothing is retried.
	WriteWorkbook(ctx context.Context, path string, wb Workbook) error
}
