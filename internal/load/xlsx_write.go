package load

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
	"github.com/KaramelBytes/aquaprep-cli/internal/utils"
)

const (
	xlsxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

	xlsxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

	xlsxWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`
)

// writeXLSX persists the table as a single-sheet workbook. Strings are
// written inline (no shared strings part) so the output stays self-contained
// and round-trips through readXLSX.
func writeXLSX(path string, t *table.Table) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", xlsxContentTypes},
		{"_rels/.rels", xlsxRootRels},
		{"xl/workbook.xml", workbookXML("Sheet1")},
		{"xl/_rels/workbook.xml.rels", xlsxWorkbookRels},
		{"xl/worksheets/sheet1.xml", sheetXML(t)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create zip part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return fmt.Errorf("write zip part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close xlsx: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func workbookXML(sheetName string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	b.WriteString(`<sheets><sheet name="`)
	b.WriteString(escapeXML(sheetName))
	b.WriteString(`" sheetId="1" r:id="rId1"/></sheets></workbook>`)
	return b.String()
}

func sheetXML(t *table.Table) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)

	// header row
	b.WriteString(`<row r="1">`)
	for j, name := range t.Names() {
		writeInlineStr(&b, cellRef(j, 1), name)
	}
	b.WriteString(`</row>`)

	cols := t.Columns()
	for i := 0; i < t.Rows(); i++ {
		rowNum := i + 2
		b.WriteString(fmt.Sprintf(`<row r="%d">`, rowNum))
		for j, c := range cols {
			if c.IsMissing(i) {
				continue // missing cells are simply absent
			}
			ref := cellRef(j, rowNum)
			if c.Kind == table.Numeric {
				b.WriteString(`<c r="` + ref + `"><v>`)
				b.WriteString(strconv.FormatFloat(c.Floats[i], 'g', -1, 64))
				b.WriteString(`</v></c>`)
			} else {
				writeInlineStr(&b, ref, c.Strings[i])
			}
		}
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData></worksheet>`)
	return b.String()
}

func writeInlineStr(b *strings.Builder, ref, val string) {
	b.WriteString(`<c r="` + ref + `" t="inlineStr"><is><t>`)
	b.WriteString(escapeXML(val))
	b.WriteString(`</t></is></c>`)
}

// cellRef builds an A1-style reference from a 0-based column and 1-based row.
func cellRef(col, row int) string {
	name := ""
	n := col + 1
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
