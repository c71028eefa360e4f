package collector

import (
	"net/url"
	"strings"

	"github.com/mzyan/NewsMood/internal/sentiment"
)

// DefaultHeadlineLimit 单个来源默认最多保留的标题条数
const DefaultHeadlineLimit = 12

// Fetcher 抽象一个标题来源：返回有序、去重、非空的标题文本。
// 抓取失败返回 error，该来源本轮直接缺席，不做重试。
type Fetcher interface {
	Name() string
	Fetch() ([]string, error)
}

// appendHeadline 整理后去重追加一条标题；达到 limit 后不再收集
func appendHeadline(list []string, seen map[string]bool, text string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	text = sentiment.Normalize(text)
	if text == "" || seen[text] {
		return list
	}
	seen[text] = true
	return append(list, text)
}

// allowedHosts 从页面 URL 推导 colly 的域名白名单，带上 www. 前缀的变体
func allowedHosts(pageURL string) []string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if strings.HasPrefix(host, "www.") {
		return []string{host, strings.TrimPrefix(host, "www.")}
	}
	return []string{host, "www." + host}
}
