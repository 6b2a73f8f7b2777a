// Package chart renders the top-rated ranking as a horizontal bar chart.
package chart

import (
	"io"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderTopRated writes an HTML bar chart of the ranking to w. Rows come
// in descending order; the category axis is filled bottom-up, so they are
// reversed here to put the highest average at the top.
func RenderTopRated(w io.Writer, rows []models.TopMovie) error {
	titles := make([]string, 0, len(rows))
	values := make([]opts.BarData, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		titles = append(titles, rows[i].Title)
		values = append(values, opts.BarData{Value: rows[i].AvgRating})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Rated Movies"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Average Rating"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Movies"}),
	)
	bar.SetXAxis(titles).AddSeries("Average Rating", values)
	bar.XYReversal()

	return bar.Render(w)
}
