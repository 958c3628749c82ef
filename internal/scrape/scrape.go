// Package scrape fetches web pages through headless Chrome and reduces them
// to plain text.
package scrape

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/chromedp/chromedp"
)

// Pages are rendered in a real browser so script-built content is present
// before the markup is stripped.
type Scraper struct {
	allocCtx context.Context
	timeout  time.Duration
}

// New starts a headless browser allocator shared by all Text calls. The
// returned cancel func shuts the browser down.
func New(ctx context.Context) (*Scraper, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	return &Scraper{allocCtx: allocCtx, timeout: 60 * time.Second}, cancel
}

// Text navigates to url in a fresh tab and returns the page body stripped
// of markup.
func (s *Scraper) Text(ctx context.Context, url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(s.allocCtx)
	defer cancel()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.timeout)
	defer cancelTimeout()
	// the tab must descend from the allocator, so caller cancellation is
	// propagated by hand
	stop := context.AfterFunc(ctx, cancelTimeout)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.InnerHTML("body", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("scrape %s: %w", url, err)
	}
	return StripTags(html), nil
}

var tagRe = regexp.MustCompile(`<[^>]*>?`)

// StripTags removes markup by pattern, not DOM semantics: every <...> run
// is deleted and the remaining text is returned untouched.
func StripTags(html string) string {
	return tagRe.ReplaceAllString(html, "")
}
