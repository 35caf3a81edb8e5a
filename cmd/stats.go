package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/afterglow/renderer"
	"github.com/achilleasa/afterglow/trail"
	"github.com/olekukonko/tablewriter"
)

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d bytes", stats.FrameSize), stats.RenderTime.String()})

	table.Render()
	return buf.String()
}

func displayTrailStats(stats trail.Stats) {
	if len(stats.Iterations) == 0 {
		return
	}
	logger.Noticef("trail statistics\n%s", trailStatsTable(stats))
}

func trailStatsTable(stats trail.Stats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Iteration", "Render time", "Decode time", "Composite time"})
	for _, stat := range stats.Iterations {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Iteration),
			stat.RenderTime.String(),
			stat.DecodeTime.String(),
			stat.CompositeTime.String(),
		})
	}

	min, avg, max := stats.RenderTimes()
	table.SetFooter([]string{
		"TOTAL " + stats.Total.String(),
		fmt.Sprintf("min %s", min),
		fmt.Sprintf("avg %s", avg),
		fmt.Sprintf("max %s", max),
	})

	table.Render()
	return buf.String()
}
