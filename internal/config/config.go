package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// 默认来源与原始需求保持一致：BBC 与卫报的首页 h3 标题
const defaultSources = "bbc|BBC News|html|https://www.bbc.com/news|h3;" +
	"guardian|The Guardian UK|html|https://www.theguardian.com/uk|h3"

// SourceSpec 单个标题来源的配置；Kind 为 html 或 rss
type SourceSpec struct {
	Code     string
	Name     string
	Kind     string
	URL      string
	Selector string // 仅 html 来源使用，空则默认 h3
}

type Config struct {
	AppPort string

	RedisAddr string
	CronSpec  string

	HeadlineLimit int
	ChartOut      string

	// 自定义词表，逗号分隔；两者都为空时使用内置默认词表
	PositiveTerms []string
	NegativeTerms []string

	Sources []SourceSpec
}

func Load() *Config {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		CronSpec:      getEnv("CRON_SPEC", "*/30 * * * *"),
		HeadlineLimit: getEnvInt("HEADLINE_LIMIT", 12),
		ChartOut:      getEnv("CHART_OUT", ""),
		PositiveTerms: splitList(getEnv("POSITIVE_TERMS", "")),
		NegativeTerms: splitList(getEnv("NEGATIVE_TERMS", "")),
		Sources:       parseSources(getEnv("NEWS_SOURCES", defaultSources)),
	}

	log.Printf("config loaded: port=%s cron=%s sources=%d limit=%d",
		cfg.AppPort, cfg.CronSpec, len(cfg.Sources), cfg.HeadlineLimit)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("warn: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// splitList 拆分逗号分隔的小写词表，丢弃空项
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseSources 解析来源配置串。
// 格式：code|name|kind|url|selector，多个来源用分号分隔，selector 可省略。
// 字段不全的条目直接跳过并告警，不影响其余来源。
func parseSources(s string) []SourceSpec {
	entries := strings.Split(s, ";")
	out := make([]SourceSpec, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		fields := strings.Split(entry, "|")
		if len(fields) < 4 {
			log.Printf("warn: skip malformed source entry %q", entry)
			continue
		}

		spec := SourceSpec{
			Code: strings.TrimSpace(fields[0]),
			Name: strings.TrimSpace(fields[1]),
			Kind: strings.ToLower(strings.TrimSpace(fields[2])),
			URL:  strings.TrimSpace(fields[3]),
		}
		if len(fields) >= 5 {
			spec.Selector = strings.TrimSpace(fields[4])
		}

		if spec.Code == "" || spec.URL == "" || (spec.Kind != "html" && spec.Kind != "rss") {
			log.Printf("warn: skip invalid source entry %q", entry)
			continue
		}
		if spec.Name == "" {
			spec.Name = spec.Code
		}

		out = append(out, spec)
	}

	return out
}
