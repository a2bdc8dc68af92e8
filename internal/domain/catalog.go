package domain

// RecordKind distinguishes heading rows from document rows.
type RecordKind string

const (
	KindSection    RecordKind = "Section"
	KindSubsection RecordKind = "Subsection"
	KindDocument   RecordKind = "Document"
)

// Heading reports whether the kind groups documents rather than carrying files.
func (k RecordKind) Heading() bool {
	return k == KindSection || k == KindSubsection
}

// VariantKind identifies the physical artifact format, inferred from the
// file extension of a document row.
type VariantKind int

const (
	VariantUnknown VariantKind = iota
	VariantPDF
	VariantDOC
)

// Availability is the three-state presence signal for one variant:
// a variant may be confirmed on disk, known only by its URL, or absent.
type Availability int

const (
	Missing Availability = iota
	RemoteOnly
	LocalFile
)

// ClassifiedRecord is the normalized form of one CSV row, produced by the
// classifier and consumed by the aggregator. It is transient: nothing holds
// one beyond the merge of the row it came from.
type ClassifiedRecord struct {
	Kind        RecordKind
	Title       string
	FileName    string
	URL         string
	Date        string
	GroupingKey string
	Variant     VariantKind
	PageCount   string
	Line        int
}

// Key derives the composite identity used to merge rows into entries.
// Titles alone are not unique across the catalogue: headings are
// disambiguated by their url, documents by their grouping key.
func (r ClassifiedRecord) Key() string {
	if r.Kind.Heading() {
		return r.Title + r.URL
	}
	return r.Title + r.GroupingKey
}

// CatalogEntry is one logical work or heading, assembled from one or more
// rows sharing a composite key. Entries live for a single aggregation run.
type CatalogEntry struct {
	Title       string
	Kind        RecordKind
	PdfFile     string
	DocFile     string
	PdfURL      string
	DocURL      string
	Date        string
	PageCount   string
	GroupingKey string

	// Set once at finalize time so completeness checks and rendering
	// agree without re-probing the filesystem.
	PdfAvailability Availability
	DocAvailability Availability
}

// Catalog is an insertion-ordered keyed collection of entries. Iteration
// order equals first-seen order and is the authoritative render order;
// lookups never reorder existing entries.
type Catalog struct {
	index   map[string]int
	entries []*CatalogEntry
	keys    []string
}

// NewCatalog builds an empty ordered catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Lookup returns the entry stored under key, if any.
func (c *Catalog) Lookup(key string) (*CatalogEntry, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.entries[i], true
}

// Insert appends a new entry under key. Inserting an existing key is a
// no-op; the first entry and its position win.
func (c *Catalog) Insert(key string, entry *CatalogEntry) {
	if _, ok := c.index[key]; ok {
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry)
	c.keys = append(c.keys, key)
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in insertion order. The slice is shared;
// callers treat it as read-only.
func (c *Catalog) Entries() []*CatalogEntry {
	return c.entries
}

// Keys returns the composite keys in insertion order.
func (c *Catalog) Keys() []string {
	return c.keys
}
