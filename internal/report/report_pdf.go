package report

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	pdfLineHeight = 14
	pdfMaxLines   = 54
)

var pdfText = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

// buildReportPDF renders lines as a single A4 page in Helvetica. Lines past
// the page are replaced by a trailer that says how many were left out.
func buildReportPDF(title string, lines []string) []byte {
	all := append([]string{title, ""}, lines...)
	if len(all) > pdfMaxLines {
		omitted := len(all) - pdfMaxLines + 1
		all = append(all[:pdfMaxLines-1], fmt.Sprintf("... %d more lines", omitted))
	}

	var content strings.Builder
	fmt.Fprintf(&content, "BT\n/F1 10 Tf\n%d TL\n40 800 Td\n", pdfLineHeight)
	for i, line := range all {
		if i > 0 {
			content.WriteString("T* ")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return out.Bytes()
}

// pdfEscape encodes v as WinAnsi and escapes the string delimiters.
func pdfEscape(v string) string {
	encoded, err := pdfText.String(v)
	if err != nil {
		encoded = v
	}
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(encoded)
}

func biweeklyLines(r BiweeklyResponse) []string {
	lines := []string{
		fmt.Sprintf("Period: %s to %s", r.Period.StartDate, r.Period.EndDate),
		fmt.Sprintf("Employees: %d", r.EmployeeCount),
		"",
		fmt.Sprintf("%-32s %6s %6s %6s %6s %8s", "Employee", "Total", "Done", "Canc.", "Abs.", "Hours"),
	}
	for _, e := range r.Employees {
		lines = append(lines, fmt.Sprintf("%-32s %6d %6d %6d %6d %8.2f",
			truncate(e.FullName, 32), e.Total, e.Completed, e.Cancelled, e.Absent, e.HoursWorked))
	}
	t := r.Totals
	lines = append(lines, "",
		fmt.Sprintf("%-32s %6d %6d %6d %6d %8.2f", "TOTAL", t.Total, t.Completed, t.Cancelled, t.Absent, t.HoursWorked),
		"",
		"Generated at "+r.GeneratedAt,
	)
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
