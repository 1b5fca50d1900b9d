package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"artfolio/artfolio/sources/store"

	"github.com/PuerkitoBio/goquery"
)

// ImageImporter fetches the image URLs of a social account's recent posts.
type ImageImporter interface {
	Fetch(ctx context.Context, platform, username string) ([]string, error)
}

// MockImporter returns six placeholder images per platform.
type MockImporter struct{}

func (MockImporter) Fetch(ctx context.Context, platform, username string) ([]string, error) {
	urls := make([]string, 6)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://source.unsplash.com/random/600x600?art&sig=%s-%d", platform, i)
	}
	return urls, nil
}

// PageImporter downloads the account's public profile page and collects
// og:image and <img> URLs from it.
type PageImporter struct {
	Client *http.Client
	// PageURL maps a platform to a template with one %s for the username.
	PageURL map[string]string
	Limit   int
}

func NewPageImporter(pageURL map[string]string) *PageImporter {
	return &PageImporter{
		Client:  &http.Client{Timeout: 15 * time.Second},
		PageURL: pageURL,
		Limit:   12,
	}
}

func (p *PageImporter) Fetch(ctx context.Context, platform, username string) ([]string, error) {
	tmpl, ok := p.PageURL[platform]
	if !ok {
		return nil, store.Invalid("Fetch", "no page configured for "+platform)
	}
	pageURL := fmt.Sprintf(tmpl, url.PathEscape(username))
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, store.E(store.KindInvalid, "Fetch", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, store.E(store.KindUnavailable, "Fetch", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, store.NotFound("Fetch", "profile page not found")
	}
	if resp.StatusCode >= 300 {
		return nil, store.E(store.KindUnavailable, "Fetch", fmt.Errorf("profile page returned %s", resp.Status))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, store.E(store.KindInternal, "Fetch", err)
	}

	seen := map[string]bool{}
	var urls []string
	add := func(raw string) bool {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "data:") {
			return true
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return true
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return true
		}
		u := abs.String()
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
		return p.Limit <= 0 || len(urls) < p.Limit
	}

	doc.Find(`meta[property="og:image"], meta[name="twitter:image"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		content, _ := s.Attr("content")
		return add(content)
	})
	doc.Find("img[src]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if p.Limit > 0 && len(urls) >= p.Limit {
			return false
		}
		src, _ := s.Attr("src")
		return add(src)
	})
	return urls, nil
}
