// Package crawl discovers the pages of a site for --all mode.
// It prefers sitemap.xml and falls back to a breadth-first link crawl,
// keeping crawling logic separate from ingestion and export.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/internal/logging"
)

const (
	// DefaultMaxPages bounds a crawl.
	DefaultMaxPages = 100
	// DefaultMaxDepth bounds how many links away from the start page a crawl goes.
	DefaultMaxDepth = 5

	sitemapTimeout = 15 * time.Second
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	URLs []sitemapURL `xml:"url"`
}

// Discoverer finds the same-domain pages reachable from a start URL.
type Discoverer struct {
	Fetcher  core.Fetcher
	Client   *http.Client
	MaxPages int
	MaxDepth int
	Logger   glog.Logger
}

// NewDiscoverer creates a Discoverer with default limits.
func NewDiscoverer(fetcher core.Fetcher) *Discoverer {
	return &Discoverer{
		Fetcher:  fetcher,
		Client:   &http.Client{Timeout: sitemapTimeout},
		MaxPages: DefaultMaxPages,
		MaxDepth: DefaultMaxDepth,
		Logger:   logging.NoOp(),
	}
}

// Discover returns the page URLs to export, in discovery order.
func (d *Discoverer) Discover(ctx context.Context, startURL string) ([]string, error) {
	start, err := url.Parse(startURL)
	if err != nil || start.Host == "" {
		return nil, fmt.Errorf("parsing start URL %q: invalid URL", startURL)
	}
	logger := logging.OrNoOp(d.Logger)

	sitemap := fmt.Sprintf("%s://%s/sitemap.xml", start.Scheme, start.Host)
	urls, err := d.fromSitemap(ctx, sitemap, start.Host)
	if err == nil && len(urls) > 0 {
		logger.Info("crawl.sitemap", "url", sitemap, "pages", len(urls))
		return urls, nil
	}
	if err != nil {
		logger.Debug("crawl.sitemap_unavailable", "url", sitemap, "error", err)
	}

	return d.fromLinks(ctx, startURL, start.Host)
}

func (d *Discoverer) maxPages() int {
	if d.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return d.MaxPages
}

func (d *Discoverer) fromSitemap(ctx context.Context, sitemapURL, host string) ([]string, error) {
	client := d.Client
	if client == nil {
		client = &http.Client{Timeout: sitemapTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sitemap returned %d", resp.StatusCode)
	}

	var set urlSet
	if err := xml.NewDecoder(io.LimitReader(resp.Body, 10<<20)).Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding sitemap: %w", err)
	}

	f := newFrontier()
	for _, u := range set.URLs {
		loc := strings.TrimSpace(u.Loc)
		if Accept(loc, host) {
			f.push(NormalizeURL(loc), 0)
		}
		if f.size() >= d.maxPages() {
			break
		}
	}
	return f.all(), nil
}

func (d *Discoverer) fromLinks(ctx context.Context, startURL, host string) ([]string, error) {
	logger := logging.OrNoOp(d.Logger)
	f := newFrontier()
	f.push(NormalizeURL(startURL), 0)

	for f.pending() && f.visited() < d.maxPages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := f.pop()
		if d.MaxDepth > 0 && cur.depth >= d.MaxDepth {
			continue
		}

		result, err := d.Fetcher.Fetch(ctx, cur.url)
		if err != nil {
			logger.Debug("crawl.fetch_failed", "url", cur.url, "error", err)
			continue
		}

		links, err := extractLinks(result.HTML, cur.url)
		if err != nil {
			continue
		}
		for _, link := range links {
			if f.size() >= d.maxPages() {
				break
			}
			if Accept(link, host) {
				f.push(NormalizeURL(link), cur.depth+1)
			}
		}
	}

	logger.Info("crawl.links", "start", startURL, "pages", f.size())
	return f.all(), nil
}

// extractLinks returns the href of every <a> in html, resolved against baseURL.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved := resolveURL(strings.TrimSpace(href), base); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}
