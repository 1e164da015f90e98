package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// SummaryEntry is one row of the top-results table in the e-mail body.
type SummaryEntry struct {
	Rank  int
	Name  string
	Score float64
}

// Summary holds everything the HTML body template needs.
type Summary struct {
	Criteria     int
	Alternatives int
	Weights      string
	Impacts      string
	Top          []SummaryEntry
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>TOPSIS Analysis Results</h2>
	<p>Hi,</p>
	<p>Your TOPSIS analysis has been completed successfully!</p>
	<h3>Analysis Summary</h3>
	<ul>
		<li><strong>Criteria:</strong> {{.Criteria}}</li>
		<li><strong>Alternatives:</strong> {{.Alternatives}}</li>
		<li><strong>Weights:</strong> {{.Weights}}</li>
		<li><strong>Impacts:</strong> {{.Impacts}}</li>
	</ul>
	<h3>Top Results</h3>
	<table border="1" cellpadding="10">
		<tr><th>Rank</th><th>Alternative</th><th>Score</th></tr>
		{{- range .Top}}
		<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{printf "%.4f" .Score}}</td></tr>
		{{- end}}
	</table>
	<p style="margin-top: 20px; color: #666;">
		Detailed results are attached to this email.
	</p>
</body>
</html>`))

// RenderSummary renders the HTML body for a result notification.
func RenderSummary(s Summary) (string, error) {
	var sb strings.Builder
	if err := summaryTmpl.Execute(&sb, s); err != nil {
		return "", fmt.Errorf("mailer: render summary: %w", err)
	}
	return sb.String(), nil
}

// FormatWeights joins weights the way the user supplied them, for display.
func FormatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", w), "0"), ".")
	}
	return strings.Join(parts, ", ")
}
