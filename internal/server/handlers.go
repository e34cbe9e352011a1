// internal/server/handlers.go
package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/render"
	"github.com/mwiater/queueviz/internal/report"
	"github.com/mwiater/queueviz/internal/view"
)

// ChartQuery selects the view state to render. Omitted fields keep the
// initial state's value.
type ChartQuery struct {
	Size   int      `form:"size" binding:"omitempty,oneof=100 1000 10000 100000 1000000 10000000"`
	Metric string   `form:"metric" binding:"omitempty,oneof=enqueue dequeue enqueueTimes dequeueTimes"`
	Chart  string   `form:"chart" binding:"omitempty,oneof=scatterplot histogram boxplot profile"`
	Filter *bool    `form:"filter"`
	Hide   []string `form:"hide" binding:"omitempty,dive,oneof=array linkedList linked-list object"`
	Format string   `form:"format" binding:"omitempty,oneof=svg png"`
	Width  int      `form:"width" binding:"omitempty,min=200,max=4000"`
	Height int      `form:"height" binding:"omitempty,min=200,max=4000"`
}

// SummaryQuery narrows the summary report.
type SummaryQuery struct {
	Size           int    `form:"size" binding:"omitempty,oneof=100 1000 10000 100000 1000000 10000000"`
	Implementation string `form:"implementation" binding:"omitempty,oneof=array linkedList linked-list object"`
	Metric         string `form:"metric" binding:"omitempty,oneof=enqueue dequeue enqueueTimes dequeueTimes"`
}

// Query converts the bound parameters into a view selection. Values have
// already passed binding validation.
func (q ChartQuery) Query() view.Query {
	vq := view.Query{
		Size:   dataset.Size(q.Size),
		Chart:  view.Chart(q.Chart),
		Filter: q.Filter,
	}
	if m, err := dataset.ParseMetric(q.Metric); err == nil {
		vq.Metric = m
	}
	for _, h := range q.Hide {
		if impl, err := dataset.ParseImplementation(h); err == nil {
			vq.Hide = append(vq.Hide, impl)
		}
	}
	return vq
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sizes": s.data.Sizes()})
}

func (s *Server) summaryHandler(c *gin.Context) {
	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	rep := s.summary
	if q.Size != 0 || q.Implementation != "" || q.Metric != "" {
		impl, _ := dataset.ParseImplementation(q.Implementation)
		m, _ := dataset.ParseMetric(q.Metric)
		rep.Summaries = report.Filter(rep.Summaries, dataset.Size(q.Size), impl, m)
	}
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, rep); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

func (s *Server) chartHandler(c *gin.Context) {
	var q ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	format := render.SVG
	if q.Format != "" {
		format = render.Format(q.Format)
	}
	layout := s.opts.Layout
	if q.Width != 0 {
		layout.Width = float64(q.Width)
	}
	if q.Height != 0 {
		layout.Height = float64(q.Height)
	}

	state := view.Select(view.New(s.data), q.Query())

	var buf bytes.Buffer
	g := figure.Build(state, layout, s.opts.Palette)
	if err := render.Write(&buf, g, int(layout.Width), int(layout.Height), format); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func badRequest(c *gin.Context, err error) {
	var details []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			switch e.Tag() {
			case "oneof":
				details = append(details, e.Field()+" must be one of ["+e.Param()+"]")
			case "min":
				details = append(details, e.Field()+" must be at least "+e.Param())
			case "max":
				details = append(details, e.Field()+" must be at most "+e.Param())
			default:
				details = append(details, e.Field()+" is invalid")
			}
		}
	} else {
		details = append(details, err.Error())
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
}
