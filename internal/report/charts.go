// Package report renders batch statistics as an HTML charts page.
package report

import (
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"resume-matcher/internal/resumes"
)

const (
	selectedColor = "#4CAF50"
	rejectedColor = "#FF5252"
)

// Render writes an HTML page with a selected-vs-rejected pie chart and a
// title-frequency bar chart for the given summary.
func Render(w io.Writer, summary resumes.Summary) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Resume Screening Report"
	page.AddCharts(screeningPie(summary), titleBar(summary))
	return page.Render(w)
}

func screeningPie(summary resumes.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Resume Screening Summary"}),
	)
	pie.AddSeries("screening", []opts.PieData{
		{Name: "Selected", Value: summary.Selected, ItemStyle: &opts.ItemStyle{Color: selectedColor}},
		{Name: "Rejected", Value: summary.Rejected, ItemStyle: &opts.ItemStyle{Color: rejectedColor}},
	}).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

func titleBar(summary resumes.Summary) *charts.Bar {
	titles := make([]string, 0, len(summary.TitleCounts))
	for title := range summary.TitleCounts {
		titles = append(titles, title)
	}
	// Most frequent first; ties broken by label for stable output.
	sort.Slice(titles, func(i, j int) bool {
		ci, cj := summary.TitleCounts[titles[i]], summary.TitleCounts[titles[j]]
		if ci != cj {
			return ci > cj
		}
		return titles[i] < titles[j]
	})

	values := make([]opts.BarData, 0, len(titles))
	for _, title := range titles {
		values = append(values, opts.BarData{Value: summary.TitleCounts[title]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Job Title Distribution"}),
	)
	bar.SetXAxis(titles).AddSeries("resumes", values)
	return bar
}
