// Package webindex scrapes remote archive index pages into legacy-schema
// rows, ready for the convert pass.
package webindex

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ArchiveCatalog/internal/ports"
)

// Scanner fetches an index page and extracts its document table. The pages
// are plain HTML tables: one row per document with a link cell, a title
// cell and a date cell.
type Scanner struct {
	client *http.Client
	logger *slog.Logger
}

var _ ports.IndexScanner = (*Scanner)(nil)

// NewScanner wires an HTTP client; a nil client gets a 20s-timeout default.
func NewScanner(client *http.Client, logger *slog.Logger) *Scanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Scanner{client: client, logger: logger}
}

// Fetch downloads pageURL and returns legacy-schema rows, header first.
// The source name fills the record column, where the legacy format keeps
// the name of the page a document was found on.
func (s *Scanner) Fetch(ctx context.Context, pageURL, source string) ([][]string, error) {
	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid index url %s: %w", pageURL, err)
	}

	rows := [][]string{{"Record", "Title", "URL", "Date", "Pages"}}
	doc.Find("table tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}

		link := cells.Eq(0).Find("a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		href = resolveURL(base, href)

		title := strings.TrimSpace(cells.Eq(1).Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}

		date := ""
		if cells.Length() > 2 {
			date = strings.TrimSpace(cells.Eq(2).Text())
		}

		rows = append(rows, []string{source, title, href, date, ""})
	})

	s.debug("index page scanned", "url", pageURL, "documents", len(rows)-1)
	return rows, nil
}

func (s *Scanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "ArchiveCatalog/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request index page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}
	return doc, nil
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func (s *Scanner) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
