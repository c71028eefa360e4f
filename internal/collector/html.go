package collector

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	htmlFetchTimeout = 10 * time.Second
	htmlUserAgent    = "NewsMoodBot/1.0"
)

// HTMLHeadlineFetcher 抓取新闻站首页，按 CSS 选择器提取标题类元素的文本。
// Selector 为空时默认 "h3"（多数新闻首页的标题卡片元素）。
type HTMLHeadlineFetcher struct {
	SourceName string
	PageURL    string
	Selector   string
	Limit      int
}

func (f *HTMLHeadlineFetcher) Name() string {
	return f.SourceName
}

func (f *HTMLHeadlineFetcher) Fetch() ([]string, error) {
	log.Printf("fetch %s headlines...", f.SourceName)

	selector := f.Selector
	if selector == "" {
		selector = "h3"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultHeadlineLimit
	}

	opts := []colly.CollectorOption{
		colly.UserAgent(htmlUserAgent),
	}
	if hosts := allowedHosts(f.PageURL); len(hosts) > 0 {
		opts = append(opts, colly.AllowedDomains(hosts...))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(htmlFetchTimeout)

	headlines := make([]string, 0, limit)
	seen := make(map[string]bool, limit)

	c.OnHTML(selector, func(e *colly.HTMLElement) {
		headlines = appendHeadline(headlines, seen, e.Text, limit)
	})

	if err := c.Visit(f.PageURL); err != nil {
		return nil, fmt.Errorf("%s: visit %s: %w", f.SourceName, f.PageURL, err)
	}
	c.Wait()

	// 选择器一条都没命中时用 goquery 直接再解析一遍兜底（页面结构偶尔变化）
	if len(headlines) == 0 {
		return f.fetchWithGoquery(selector, limit)
	}

	return headlines, nil
}

// fetchWithGoquery 不走 colly 回调，直接拉取页面并用 goquery 解析
func (f *HTMLHeadlineFetcher) fetchWithGoquery(selector string, limit int) ([]string, error) {
	client := &http.Client{Timeout: htmlFetchTimeout}

	req, err := http.NewRequest(http.MethodGet, f.PageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", f.SourceName, err)
	}
	req.Header.Set("User-Agent", htmlUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch %s: %w", f.SourceName, f.PageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", f.SourceName, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", f.SourceName, err)
	}

	headlines := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		headlines = appendHeadline(headlines, seen, s.Text(), limit)
	})

	if len(headlines) == 0 {
		log.Printf("fetch %s got 0 headlines", f.SourceName)
	}
	return headlines, nil
}
