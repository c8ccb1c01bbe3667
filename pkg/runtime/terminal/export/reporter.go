package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/work-atlas/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Dashboard(summary domain.DashboardSummary) error {
	tmpl := `
Dashboard
Month hours:   {{printf "%.1f" .MonthHours}}
Week hours:    {{printf "%.1f" .WeekHours}}
Top client:    {{.TopClient}}
Top project:   {{.TopProject}}
Avg daily:     {{printf "%.1f" .AvgDaily}}
Clients:       {{.ClientCount}}
`
	return c.render("dashboard", tmpl, summary)
}

func (c *Reporter) Clients(entries []domain.ClientHours) error {
	tmpl := `
Time by client
{{range .}}- {{.Client}}: {{printf "%.1f" .Hours}}h ({{printf "%.1f" .Percentage}}%)
{{else}}(no records)
{{end}}`
	return c.render("clients", tmpl, entries)
}

func (c *Reporter) Weekly(weeks []domain.WeekSummary) error {
	tmpl := `
Weekly summary
{{range .}}
Week {{.WeekStart.Format "2006-01-02"}} to {{.WeekEnd.Format "2006-01-02"}}
Total: {{printf "%.1f" .TotalHours}}h (change {{printf "%.1f" .Change}}%)
{{range .TopClients}}  - {{.Client}}: {{printf "%.1f" .Hours}}h
{{end}}{{else}}(no records)
{{end}}`
	return c.render("weekly", tmpl, weeks)
}

func (c *Reporter) Monthly(months []domain.MonthSummary) error {
	tmpl := `
Monthly comparison
{{range .}}
{{.Month}} {{.Year}}: {{printf "%.1f" .TotalHours}}h
{{range .TopClients}}  - {{.Client}}: {{printf "%.1f" .Hours}}h
{{end}}{{else}}(no records)
{{end}}`
	return c.render("monthly", tmpl, months)
}

func (c *Reporter) Activities(activities []domain.Activity) error {
	tmpl := `
Top activities
{{range .}}- {{.Details}} ({{.Client}}/{{.Project}}): {{printf "%.1f" .Hours}}h, last {{.LastDate.Format "2006-01-02"}}
{{else}}(no records)
{{end}}`
	return c.render("activities", tmpl, activities)
}

func (c *Reporter) Users(summaries []domain.UserSummary) error {
	tmpl := `
User summaries
{{range .}}
{{.Username}}
  Total: {{printf "%.1f" .TotalHours}}h, billable {{printf "%.1f" .BillableHours}}h, non-billable {{printf "%.1f" .NonBillableHours}}h
  Tasks: {{.TaskCount}}, avg/day {{printf "%.1f" .AvgDaily}}h
  Top client: {{.TopClient}}, top project: {{.TopProject}}
  Last activity: {{.LastActivity.Format "2006-01-02"}}
{{else}}(no records)
{{end}}`
	return c.render("users", tmpl, summaries)
}

func (c *Reporter) render(name, tmpl string, data interface{}) error {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, data)
}
