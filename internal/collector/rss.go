package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
)

const rssFetchTimeout = 10 * time.Second

// RSSHeadlineFetcher 从 RSS/Atom 订阅源提取条目标题，
// 整理规则与 HTML 抓取一致：折叠空白、按序去重、限制条数
type RSSHeadlineFetcher struct {
	SourceName string
	FeedURL    string
	Limit      int
}

func (f *RSSHeadlineFetcher) Name() string {
	return f.SourceName
}

func (f *RSSHeadlineFetcher) Fetch() ([]string, error) {
	log.Printf("fetch %s feed...", f.SourceName)

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultHeadlineLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), rssFetchTimeout)
	defer cancel()

	feed, err := gofeed.NewParser().ParseURLWithContext(f.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: parse feed %s: %w", f.SourceName, f.FeedURL, err)
	}

	headlines := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		headlines = appendHeadline(headlines, seen, item.Title, limit)
		if len(headlines) >= limit {
			break
		}
	}

	if len(headlines) == 0 {
		log.Printf("fetch %s got 0 headlines", f.SourceName)
	}
	return headlines, nil
}
