package webindex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScannerFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<table>
		  <tr><th>Part</th><th>Title</th><th>Date</th></tr>
		  <tr>
		    <td><a href="/images/AA-0196C-TK.pdf">AA-0196C-TK</a></td>
		    <td>ALGOL Programmer's Guide</td>
		    <td>12 March 1984</td>
		  </tr>
		  <tr>
		    <td><a href="http://other.example/b.pdf">B-100</a></td>
		    <td>Another Guide</td>
		  </tr>
		  <tr><td>no link here</td><td>ignored</td></tr>
		</table>`))
	}))
	defer server.Close()

	scanner := NewScanner(server.Client(), nil)
	rows, err := scanner.Fetch(context.Background(), server.URL+"/index.html", "handbooks")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	first := rows[1]
	if first[0] != "handbooks" {
		t.Fatalf("source name missing: %v", first)
	}
	if first[1] != "ALGOL Programmer's Guide" {
		t.Fatalf("unexpected title: %q", first[1])
	}
	if first[2] != server.URL+"/images/AA-0196C-TK.pdf" {
		t.Fatalf("relative link not resolved: %q", first[2])
	}
	if first[3] != "12 March 1984" {
		t.Fatalf("unexpected date: %q", first[3])
	}

	second := rows[2]
	if second[2] != "http://other.example/b.pdf" {
		t.Fatalf("absolute link must pass through: %q", second[2])
	}
	if second[3] != "" {
		t.Fatalf("missing date cell must stay empty: %q", second[3])
	}
}

func TestScannerFetchBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	scanner := NewScanner(server.Client(), nil)
	if _, err := scanner.Fetch(context.Background(), server.URL, "x"); err == nil {
		t.Fatalf("expected an error for a 404 index page")
	}
}
