package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"oggify/internal/batch"
	"oggify/internal/services"
)

const maxDetailWidth = 60

func renderSummary(summary batch.Summary, colorize bool) string {
	var b strings.Builder
	rows := make([][]string, 0, len(summary.Results)+len(summary.Skipped))
	for _, r := range summary.Results {
		rows = append(rows, resultRow(r))
	}
	for _, s := range summary.Skipped {
		rows = append(rows, []string{filepath.Base(s.Input), "skipped", "-", "-", s.Reason})
	}
	if len(rows) > 0 {
		view := tableView{
			columns: []column{
				{header: "File", align: text.AlignLeft},
				{header: "Status", align: text.AlignLeft, colors: statusColors},
				{header: "Length", align: text.AlignRight},
				{header: "Elapsed", align: text.AlignRight},
				{header: "Detail", align: text.AlignLeft},
			},
			rows:     rows,
			footer:   []string{fmt.Sprintf("%d files", len(rows)), "", "", formatDuration(summary.Elapsed), summary.RunID},
			colorize: colorize,
		}
		b.WriteString(view.render())
		b.WriteByte('\n')
	}

	kind := statusOK
	switch {
	case summary.Failed() > 0:
		kind = statusWarn
	case summary.Dispatched() == 0:
		kind = statusInfo
	}
	message := fmt.Sprintf("%d converted, %d failed, %d skipped of %d found in %s",
		summary.Succeeded(), summary.Failed(), len(summary.Skipped), summary.Discovered, formatDuration(summary.Elapsed))
	b.WriteString(renderStatusLine("Conversion finished", kind, message, colorize))
	b.WriteByte('\n')
	return b.String()
}

func renderSingleResult(result batch.Result, colorize bool) string {
	if result.Status == batch.StatusSucceeded {
		message := fmt.Sprintf("%s -> %s (%s)", filepath.Base(result.Task.Input), filepath.Base(result.Task.Output), formatDuration(result.Elapsed))
		return renderStatusLine("Converted", statusOK, message, colorize) + "\n"
	}
	message := fmt.Sprintf("%s: %s", filepath.Base(result.Task.Input), failureDetail(result.Err))
	return renderStatusLine("Failed", statusError, message, colorize) + "\n"
}

func resultRow(r batch.Result) []string {
	detail := filepath.Base(r.Task.Output)
	if r.Status == batch.StatusFailed {
		detail = failureDetail(r.Err)
	}
	return []string{
		filepath.Base(r.Task.Input),
		string(r.Status),
		formatDuration(r.InputDuration),
		formatDuration(r.Elapsed),
		detail,
	}
}

func failureDetail(err error) string {
	if err == nil {
		return services.KindUnexpectedFailure
	}
	text := services.FailureKind(err) + ": " + firstLine(err.Error())
	if runes := []rune(text); len(runes) > maxDetailWidth {
		text = string(runes[:maxDetailWidth-3]) + "..."
	}
	return text
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
