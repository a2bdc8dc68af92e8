package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"ArchiveCatalog/internal/dates"
	"ArchiveCatalog/internal/domain"
)

// Recognized keys in the free-text Options column.
const (
	OptContainingPage = "containing-page"
	OptPageCount      = "page-count"
	OptMD5            = "md5"
)

// RecognizedOptions lists every option key the classifier extracts.
var RecognizedOptions = []string{OptContainingPage, OptPageCount, OptMD5}

var optionExpr = regexp.MustCompile(`([A-Za-z0-9-]+)='([^']*)'`)

// ParseOptions pulls space-separated key='value' tokens out of free text.
// Unrecognized keys are ignored. Recognized keys that appear without a
// single-quoted value are returned in the second result so callers can
// report them; they carry no value.
func ParseOptions(text string, keys []string) (map[string]string, []string) {
	values := map[string]string{}
	for _, match := range optionExpr.FindAllStringSubmatch(text, -1) {
		for _, key := range keys {
			if match[1] == key {
				values[key] = match[2]
			}
		}
	}

	var malformed []string
	for _, key := range keys {
		if _, ok := values[key]; ok {
			continue
		}
		if strings.Contains(text, key+"=") {
			malformed = append(malformed, key)
		}
	}
	return values, malformed
}

// LastPathElement extracts the final path segment of a URL, dropping any
// query or fragment. Some legacy exports embed a stray trailing quote in
// the URL cell; a single one is stripped.
func LastPathElement(raw string) string {
	name := raw
	if parsed, err := url.Parse(raw); err == nil {
		name = parsed.Path
	}
	name = path.Base(name)
	name = strings.TrimSuffix(name, `"`)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// InferVariant maps a file extension to the artifact kind, case-insensitively.
func InferVariant(fileName string) domain.VariantKind {
	switch strings.ToUpper(filepath.Ext(fileName)) {
	case ".PDF":
		return domain.VariantPDF
	case ".DOC":
		return domain.VariantDOC
	}
	return domain.VariantUnknown
}

// Classifier inspects raw rows of one index file and produces normalized
// records. Column positions come from the file's header row, so the same
// classifier serves every recognized schema, with or without a File column.
type Classifier struct {
	columns map[string]int
	width   int
	logger  *slog.Logger
}

// NewClassifier derives the column mapping from a header row.
func NewClassifier(header []string, logger *slog.Logger) *Classifier {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	// A usable row must reach every required column.
	width := 0
	for _, name := range []string{"Record", "Title", "URL", "Date", "Options"} {
		if i, ok := columns[name]; ok && i+1 > width {
			width = i + 1
		}
	}

	return &Classifier{columns: columns, width: width, logger: logger}
}

// Classify inspects one row. A nil record means the row carries nothing to
// merge; any problems are reported through the returned diagnostics.
func (c *Classifier) Classify(row []string, line int) (*domain.ClassifiedRecord, []domain.Diagnostic) {
	if blank(row) {
		return nil, []domain.Diagnostic{{Kind: domain.DiagSkippedRow, Line: line, Message: "blank row"}}
	}
	if len(row) < c.width {
		return nil, []domain.Diagnostic{{
			Kind:    domain.DiagSkippedRow,
			Line:    line,
			Message: fmt.Sprintf("short row: %d columns, need at least %d", len(row), c.width),
		}}
	}

	recordType := c.field(row, "Record")
	if recordType == "Record" {
		// Repeated header row, seen in concatenated index files.
		return nil, nil
	}

	var diags []domain.Diagnostic
	options, malformed := ParseOptions(c.field(row, "Options"), RecognizedOptions)
	for _, key := range malformed {
		diags = append(diags, domain.Diagnostic{
			Kind:    domain.DiagOptionParse,
			Line:    line,
			Message: fmt.Sprintf("option %q has no parseable value", key),
		})
	}

	rec := &domain.ClassifiedRecord{
		Title:     c.field(row, "Title"),
		URL:       c.field(row, "URL"),
		Date:      dates.ToISO(c.field(row, "Date")),
		PageCount: options[OptPageCount],
		Line:      line,
	}

	switch recordType {
	case string(domain.KindSection), string(domain.KindSubsection):
		rec.Kind = domain.RecordKind(recordType)
		return rec, diags
	}

	rec.Kind = domain.KindDocument
	if grouping, ok := options[OptContainingPage]; ok {
		rec.GroupingKey = grouping
	} else {
		// Rows converted before the containing-page option existed keep
		// the source page name in the raw record column; it still
		// disambiguates works that share a title.
		rec.GroupingKey = recordType
	}

	rec.FileName = c.field(row, "File")
	if rec.FileName == "" {
		rec.FileName = LastPathElement(rec.URL)
	}
	rec.Variant = InferVariant(rec.FileName)

	c.debug("classified row", "line", line, "kind", rec.Kind, "title", rec.Title)
	return rec, diags
}

func (c *Classifier) field(row []string, name string) string {
	i, ok := c.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (c *Classifier) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
