package main

import (
	"log"

	"github.com/mzyan/NewsMood/internal/analyzer"
	"github.com/mzyan/NewsMood/internal/cache"
	"github.com/mzyan/NewsMood/internal/collector"
	"github.com/mzyan/NewsMood/internal/config"
	"github.com/mzyan/NewsMood/internal/report"
	"github.com/mzyan/NewsMood/internal/scheduler"
	"github.com/mzyan/NewsMood/internal/sentiment"
)

// 一个仅执行一轮分析的命令行入口：抓取、分类、打印报告并可选输出图表
func main() {
	cfg := config.Load()

	classifier := sentiment.NewClassifier(lexiconFromConfig(cfg))
	hc := cache.New(cfg.RedisAddr, cache.DefaultTTL)

	fetchers := buildFetchers(cfg)
	if len(fetchers) == 0 {
		log.Fatalf("no valid sources configured")
	}

	s, err := scheduler.New(cfg.CronSpec, fetchers, analyzer.New(classifier), hc)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	if cfg.ChartOut != "" {
		s.Renderer = &report.ChartRenderer{}
		s.ChartOut = cfg.ChartOut
	}

	// 只执行一轮分析后退出
	s.RunOnce()
}

// buildFetchers 按配置组装各来源的抓取器（与 cmd/api 保持一致）
func buildFetchers(cfg *config.Config) []collector.Fetcher {
	fetchers := make([]collector.Fetcher, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		switch src.Kind {
		case "rss":
			fetchers = append(fetchers, &collector.RSSHeadlineFetcher{
				SourceName: src.Name,
				FeedURL:    src.URL,
				Limit:      cfg.HeadlineLimit,
			})
		default:
			fetchers = append(fetchers, &collector.HTMLHeadlineFetcher{
				SourceName: src.Name,
				PageURL:    src.URL,
				Selector:   src.Selector,
				Limit:      cfg.HeadlineLimit,
			})
		}
	}
	return fetchers
}

// lexiconFromConfig 两组词表都配置了才启用自定义词表，否则用内置默认
func lexiconFromConfig(cfg *config.Config) *sentiment.Lexicon {
	if len(cfg.PositiveTerms) == 0 || len(cfg.NegativeTerms) == 0 {
		return nil
	}
	return sentiment.NewLexicon(cfg.PositiveTerms, cfg.NegativeTerms)
}
