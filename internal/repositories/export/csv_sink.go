package export

import (
	"bytes"
	"strings"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
)

// CSVSink renders reports as comma-separated text. Every field is quoted,
// regardless of content, so consumers that split naively on commas still see
// a stable column count for fields carrying commas in comments or bar names.
type CSVSink struct{}

func NewCSVSink() portsrepo.ReportSink {
	return &CSVSink{}
}

var _ portsrepo.ReportSink = (*CSVSink)(nil)

func (s *CSVSink) Render(fileBase string, headers []string, rows [][]string) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	writeCSVLine(&buf, headers)
	for _, row := range rows {
		writeCSVLine(&buf, row)
	}

	return &domain.ExportFile{
		FileName:    fileBase + ".csv",
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}

// writeCSVLine quotes every field and doubles embedded quotes.
// encoding/csv only quotes when it has to, which breaks the
// always-quoted contract, so the rendering is done by hand.
func writeCSVLine(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
