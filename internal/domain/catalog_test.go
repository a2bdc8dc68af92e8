package domain

import "testing"

func TestCatalogPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	cat := NewCatalog()
	cat.Insert("b", &CatalogEntry{Title: "B"})
	cat.Insert("a", &CatalogEntry{Title: "A"})
	cat.Insert("c", &CatalogEntry{Title: "C"})

	// Lookups must not disturb the order.
	if _, ok := cat.Lookup("a"); !ok {
		t.Fatalf("lookup failed")
	}

	entries := cat.Entries()
	if entries[0].Title != "B" || entries[1].Title != "A" || entries[2].Title != "C" {
		t.Fatalf("order not preserved: %v, %v, %v", entries[0].Title, entries[1].Title, entries[2].Title)
	}
	if keys := cat.Keys(); keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Fatalf("key order not preserved: %v", keys)
	}
}

func TestCatalogDuplicateInsertIsNoOp(t *testing.T) {
	t.Parallel()

	cat := NewCatalog()
	first := &CatalogEntry{Title: "first"}
	cat.Insert("k", first)
	cat.Insert("k", &CatalogEntry{Title: "second"})

	if cat.Len() != 1 {
		t.Fatalf("duplicate insert must not grow the catalog: %d", cat.Len())
	}
	if entry, _ := cat.Lookup("k"); entry != first {
		t.Fatalf("duplicate insert must not replace the entry")
	}
}

func TestCompositeKeys(t *testing.T) {
	t.Parallel()

	heading := ClassifiedRecord{Kind: KindSection, Title: "T", URL: "http://x", GroupingKey: "ignored"}
	if heading.Key() != "Thttp://x" {
		t.Fatalf("heading key: %q", heading.Key())
	}

	doc := ClassifiedRecord{Kind: KindDocument, Title: "T", URL: "http://x", GroupingKey: "G"}
	if doc.Key() != "TG" {
		t.Fatalf("document key: %q", doc.Key())
	}
}
