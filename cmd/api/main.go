package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mzyan/NewsMood/internal/analyzer"
	"github.com/mzyan/NewsMood/internal/api"
	"github.com/mzyan/NewsMood/internal/cache"
	"github.com/mzyan/NewsMood/internal/collector"
	"github.com/mzyan/NewsMood/internal/config"
	"github.com/mzyan/NewsMood/internal/report"
	"github.com/mzyan/NewsMood/internal/scheduler"
	"github.com/mzyan/NewsMood/internal/sentiment"
)

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
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(s, classifier)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

// buildFetchers 按配置组装各来源的抓取器，顺序即配置顺序
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
