package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mzyan/NewsMood/internal/scheduler"
	"github.com/mzyan/NewsMood/internal/sentiment"
)

type Server struct {
	sched      *scheduler.Scheduler
	classifier *sentiment.Classifier
}

func NewServer(sched *scheduler.Scheduler, classifier *sentiment.Classifier) *Server {
	if classifier == nil {
		classifier = sentiment.NewClassifier(nil)
	}
	return &Server{sched: sched, classifier: classifier}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/summary", s.summary)
		v1.GET("/sources/:name", s.sourceReport)
		v1.POST("/classify", s.classify)
		v1.POST("/run", s.triggerRun)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// summary 返回最近一轮的跨源汇总行，顺序即来源抓取顺序
func (s *Server) summary(c *gin.Context) {
	latest, ok := s.sched.Latest()
	if !ok || latest.Empty() {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "no_data",
			"message": "no completed run with data yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    latest.Rows(),
	})
}

// sourceReport 返回单个来源的完整报告（含逐条明细）
func (s *Server) sourceReport(c *gin.Context) {
	name := c.Param("name")

	latest, ok := s.sched.Latest()
	if ok {
		for _, rep := range latest.Reports {
			if strings.EqualFold(rep.Source, name) {
				c.JSON(http.StatusOK, gin.H{
					"code":    "ok",
					"message": "success",
					"data":    rep,
				})
				return
			}
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"code":    "source_not_found",
		"message": "source absent from the latest run",
	})
}

type classifyRequest struct {
	Text string `json:"text"`
}

// classify 对任意文本做一次即席分类；空文本也是合法输入
func (s *Server) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_request",
			"message": "body must be json with a text field",
		})
		return
	}

	label, score := s.classifier.Classify(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data": gin.H{
			"text":  sentiment.Normalize(req.Text),
			"label": label,
			"score": score,
		},
	})
}

// triggerRun 手动触发一轮完整分析并返回汇总行
func (s *Server) triggerRun(c *gin.Context) {
	summary := s.sched.RunOnce()
	if summary.Empty() {
		c.JSON(http.StatusOK, gin.H{
			"code":    "no_data",
			"message": "all sources failed, nothing to report",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    summary.Rows(),
	})
}
