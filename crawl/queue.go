package crawl

// page is a discovered URL and its link distance from the start page.
type page struct {
	url   string
	depth int
}

// frontier is a breadth-first work list that remembers every URL it has
// seen. all() keeps discovery order.
type frontier struct {
	pages []page
	seen  map[string]bool
	next  int
}

func newFrontier() *frontier {
	return &frontier{seen: make(map[string]bool)}
}

func (f *frontier) push(url string, depth int) {
	if f.seen[url] {
		return
	}
	f.seen[url] = true
	f.pages = append(f.pages, page{url: url, depth: depth})
}

func (f *frontier) pending() bool { return f.next < len(f.pages) }

func (f *frontier) pop() page {
	p := f.pages[f.next]
	f.next++
	return p
}

// visited counts the pages already popped.
func (f *frontier) visited() int { return f.next }

func (f *frontier) size() int { return len(f.pages) }

func (f *frontier) all() []string {
	urls := make([]string, len(f.pages))
	for i, p := range f.pages {
		urls[i] = p.url
	}
	return urls
}
