package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mzyan/NewsMood/internal/analyzer"
	"github.com/mzyan/NewsMood/internal/cache"
	"github.com/mzyan/NewsMood/internal/collector"
	"github.com/mzyan/NewsMood/internal/report"
)

// Scheduler 按 cron 周期执行完整的分析流程：
// 并发抓取各来源 → 逐源分类聚合 → 文本报告与图表渲染。
// 最近一轮的 RunSummary 保存在内存里供 API 读取，
// 每轮整体替换，进程退出即消失，不做跨运行持久化。
type Scheduler struct {
	cron     *cron.Cron
	fetchers []collector.Fetcher
	analyzer *analyzer.Analyzer
	cache    *cache.HeadlineCache

	// 可在 Start 前覆盖的输出配置
	Reporter *report.TextReporter
	Renderer *report.ChartRenderer
	ChartOut string

	mu     sync.RWMutex
	latest analyzer.RunSummary
	hasRun bool
}

// New 创建调度器并注册 cron 任务；cache 可以为 nil
func New(spec string, fetchers []collector.Fetcher, a *analyzer.Analyzer, hc *cache.HeadlineCache) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		fetchers: fetchers,
		analyzer: a,
		cache:    hc,
		Reporter: report.NewTextReporter(nil),
	}

	if _, err := c.AddFunc(spec, func() { s.runOnce() }); err != nil {
		return nil, err
	}

	return s, nil
}

// Start 启动定时任务。
// 延迟执行首轮分析，避免与服务启动期的首批请求争抢资源。
func (s *Scheduler) Start() {
	s.cron.Start()
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

// Stop 停止定时任务
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便命令行与 API 手动触发
func (s *Scheduler) RunOnce() analyzer.RunSummary {
	return s.runOnce()
}

// Latest 返回最近一轮的汇总；尚未完成过任何一轮时 ok 为 false
func (s *Scheduler) Latest() (analyzer.RunSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasRun
}

func (s *Scheduler) runOnce() analyzer.RunSummary {
	log.Println("start analysis run...")

	// 预留索引位并发抓取：汇总顺序必须等于来源配置顺序，
	// 与 goroutine 完成的先后无关
	results := make([]*analyzer.SourceReport, len(s.fetchers))

	var wg sync.WaitGroup
	for i, f := range s.fetchers {
		idx, fetcher := i, f
		wg.Add(1)
		go func() {
			defer wg.Done()

			name := fetcher.Name()
			ctx := context.Background()

			headlines, cached := s.cache.Get(ctx, name)
			if cached {
				log.Printf("%s: %d headlines from cache", name, len(headlines))
			} else {
				var err error
				headlines, err = fetcher.Fetch()
				if err != nil {
					// 单个来源失败只缺席本轮，不影响其它来源
					log.Printf("fetch %s error: %v", name, err)
					return
				}
				s.cache.Set(ctx, name, headlines)
			}

			if len(headlines) == 0 {
				log.Printf("fetch %s got 0 headlines", name)
			}

			rep := s.analyzer.Analyze(name, headlines)
			results[idx] = &rep
		}()
	}
	wg.Wait()

	reports := make([]analyzer.SourceReport, 0, len(results))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	summary := analyzer.RunSummary{Reports: reports}

	s.mu.Lock()
	s.latest = summary
	s.hasRun = true
	s.mu.Unlock()

	if summary.Empty() {
		log.Println("no data available, analysis skipped")
		return summary
	}

	if s.Reporter != nil {
		for _, rep := range summary.Reports {
			s.Reporter.Source(rep)
		}
		s.Reporter.Summary(summary)
	}

	if s.Renderer != nil && s.ChartOut != "" {
		if err := s.Renderer.RenderFile(summary, s.ChartOut); err != nil {
			log.Printf("render chart error: %v", err)
		} else {
			log.Printf("chart written to %s", s.ChartOut)
		}
	}

	log.Printf("analysis run done, %d/%d sources reported", len(reports), len(s.fetchers))
	return summary
}
