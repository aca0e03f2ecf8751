package utils

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorCritical = "#d73027"
	ColorHigh     = "#f46d43"
	ColorElevated = "#fee08b"
	ColorModerate = "#66c2a5"
)

const (
	chartHeight      = 20
	chartBarWidth    = 12
	chartMinWidth    = 40
	chartMaxLabelLen = 10
)

var chartBorderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawUtilizationChart prints one bar chart per region of the index
func DrawUtilizationChart(index model.HighUtilizationIndex) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊 SUBNET UTILIZATION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	for _, region := range index.Regions {
		bucket := index.Buckets[region]
		if len(bucket) == 0 {
			continue
		}

		fmt.Printf("\n %s\n", text.FgHiCyan.Sprint(strings.ToUpper(region)))
		fmt.Println(RenderUtilizationChart(bucket))
	}
}

// RenderUtilizationChart renders the utilization of the given subnets as bars
func RenderUtilizationChart(results []model.UtilizationResult) string {
	width := len(results) * (chartBarWidth + 1)
	if width < chartMinWidth {
		width = chartMinWidth
	}

	bc := barchart.New(width, chartHeight)

	for _, result := range results {
		bc.Push(barchart.BarData{
			Label: barLabel(result),
			Values: []barchart.BarValue{
				{
					Name:  result.SubnetName,
					Value: result.Utilization,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(utilizationColor(result.Utilization))),
				},
			},
		})
	}

	bc.Draw()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		chartBorderStyle.Render(bc.View()),
	)
}

func barLabel(result model.UtilizationResult) string {
	name := result.SubnetName
	if len(name) > chartMaxLabelLen {
		name = name[:chartMaxLabelLen-1] + "…"
	}
	return fmt.Sprintf("%s %s", name, FormatUtilization(result))
}

func utilizationColor(utilization float64) string {
	switch {
	case utilization >= 90:
		return ColorCritical
	case utilization >= 75:
		return ColorHigh
	case utilization >= 60:
		return ColorElevated
	default:
		return ColorModerate
	}
}
