package catalog

import (
	"strings"
	"testing"

	"ArchiveCatalog/internal/domain"
)

type stubChecker map[string]bool

func (s stubChecker) Exists(name string) bool { return s[name] }

func sectionRecord(title, url, date string) domain.ClassifiedRecord {
	return domain.ClassifiedRecord{Kind: domain.KindSection, Title: title, URL: url, Date: date}
}

func pdfRecord(title, file, url, date, grouping string) domain.ClassifiedRecord {
	return domain.ClassifiedRecord{
		Kind: domain.KindDocument, Title: title, FileName: file, URL: url,
		Date: date, GroupingKey: grouping, Variant: domain.VariantPDF, PageCount: "5",
	}
}

func docRecord(title, file, url, date, grouping string) domain.ClassifiedRecord {
	rec := pdfRecord(title, file, url, date, grouping)
	rec.Variant = domain.VariantDOC
	return rec
}

func TestMergePdfAndDocVariants(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(sectionRecord("Catalog A", "http://x/a", "2020-01-01"))
	b.Add(pdfRecord("Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "X"))
	b.Add(docRecord("Doc1", "a.doc", "http://x/a.doc", "2020-02-03", "X"))

	cat, diags := b.Finalize(stubChecker{"a.pdf": true, "a.doc": true})
	if len(diags) != 0 {
		t.Fatalf("expected no warnings, got %v", diags)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cat.Len())
	}

	doc := cat.Entries()[1]
	if doc.PdfFile != "a.pdf" || doc.DocFile != "a.doc" {
		t.Fatalf("variants not merged: pdf=%q doc=%q", doc.PdfFile, doc.DocFile)
	}
	if doc.Date != "2020-02-03" {
		t.Fatalf("expected last-written date, got %q", doc.Date)
	}
	if doc.PdfAvailability != domain.LocalFile || doc.DocAvailability != domain.LocalFile {
		t.Fatalf("expected local availability, got %v/%v", doc.PdfAvailability, doc.DocAvailability)
	}
}

func TestLastWriteWinsIncludingBlanks(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(pdfRecord("Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "X"))
	b.Add(docRecord("Doc1", "a.doc", "http://x/a.doc", "", "X"))

	cat, _ := b.Finalize(nil)
	if got := cat.Entries()[0].Date; got != "" {
		t.Fatalf("blank date must overwrite, got %q", got)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	rec := pdfRecord("Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "X")
	b.Add(rec)
	b.Add(rec)

	cat, _ := b.Finalize(nil)
	if cat.Len() != 1 {
		t.Fatalf("re-feeding a merged row created a new entry: %d", cat.Len())
	}
}

func TestInsertionOrderIsPreserved(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(sectionRecord("S", "http://x/s", "2020-01-01"))
	b.Add(pdfRecord("B", "b.pdf", "http://x/b.pdf", "2020-01-02", "P"))
	b.Add(pdfRecord("A", "a.pdf", "http://x/a.pdf", "2020-01-03", "P"))
	b.Add(docRecord("B", "b.doc", "http://x/b.doc", "2020-01-04", "P"))

	cat, _ := b.Finalize(nil)
	var titles []string
	for _, e := range cat.Entries() {
		titles = append(titles, e.Title)
	}
	if got := strings.Join(titles, ","); got != "S,B,A" {
		t.Fatalf("unexpected order: %s", got)
	}
}

func TestSectionsWithSameTitleDistinctURLs(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(sectionRecord("Systems", "http://x/1", "2020-01-01"))
	b.Add(sectionRecord("Systems", "http://x/2", "2020-01-01"))

	cat, _ := b.Finalize(nil)
	if cat.Len() != 2 {
		t.Fatalf("heading keys must include the url, got %d entries", cat.Len())
	}
}

func TestUnknownVariantReportedAndDropped(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	rec := pdfRecord("Report", "report.xyz", "http://x/report.xyz", "2020-01-01", "X")
	rec.Variant = domain.VariantUnknown
	b.Add(rec)

	cat, diags := b.Finalize(nil)
	entry := cat.Entries()[0]
	if entry.PdfFile != "" || entry.DocFile != "" {
		t.Fatalf("unknown variant must not fill a slot: %+v", entry)
	}

	var kinds []string
	for _, d := range diags {
		kinds = append(kinds, string(d.Kind)+": "+d.Message)
	}
	joined := strings.Join(kinds, "; ")
	if !strings.Contains(joined, "unknown file type") {
		t.Fatalf("missing unknown-file-type warning in %q", joined)
	}
	if !strings.Contains(joined, "missing files") || !strings.Contains(joined, "missing urls") {
		t.Fatalf("missing completeness warnings in %q", joined)
	}
}

func TestPdfOnlyDocumentRendersDocMissing(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(pdfRecord("Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "X"))

	cat, diags := b.Finalize(stubChecker{"a.pdf": true})
	entry := cat.Entries()[0]
	if entry.DocAvailability != domain.Missing {
		t.Fatalf("expected DOC missing, got %v", entry.DocAvailability)
	}
	// One file and one url are present, so no completeness warning fires.
	if len(diags) != 0 {
		t.Fatalf("unexpected warnings: %v", diags)
	}
}

func TestRemoteOnlyAvailability(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(pdfRecord("Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "X"))

	cat, _ := b.Finalize(stubChecker{})
	if got := cat.Entries()[0].PdfAvailability; got != domain.RemoteOnly {
		t.Fatalf("expected remote-only, got %v", got)
	}
}

func TestHeadingURLsFilledFromOwnRow(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	b.Add(sectionRecord("Catalog A", "http://x/a", "2020-01-01"))

	cat, _ := b.Finalize(nil)
	entry := cat.Entries()[0]
	if entry.PdfURL != "http://x/a" || entry.DocURL != "http://x/a" {
		t.Fatalf("heading urls not set: %+v", entry)
	}
	if entry.PdfFile != "" || entry.DocFile != "" {
		t.Fatalf("headings carry no files: %+v", entry)
	}
}
