package report

// reportTemplate is parsed by text/template or html/template, so it must stay
// within the syntax both accept.
const reportTemplate = `<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
    <meta charset="UTF-8">
    <title>Research Report: {{.Topic}}</title>
    <style>
        body { font-family: sans-serif; max-width: 900px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #333; }
        h1 { border-bottom: 3px solid #3b82f6; padding-bottom: 0.5rem; color: #1e3a8a; }
        h2 { margin-top: 2.5rem; color: #2563eb; border-left: 5px solid #3b82f6; padding-left: 10px; }
        .card { background: #fff; padding: 1.5rem; margin-bottom: 1rem; border: 1px solid #e5e7eb; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
        .title { font-size: 1.25rem; font-weight: bold; margin-bottom: 0.5rem; }
        .title a { color: #2563eb; text-decoration: none; }
        .meta { font-size: 0.9rem; color: #6b7280; margin-bottom: 0.5rem; }
        .summary { margin-top: 0.5rem; }
    </style>
</head>
<body>
    <h1>Research Report</h1>
    <p><strong>Topic:</strong> {{.Topic}} | <strong>Date:</strong> {{.Date}}</p>
{{range .Sections}}
    <h2>{{.Heading}}</h2>
    {{if .Records}}{{range .Records}}<div class="card"><div class="title"><a href="{{.URL}}" target="_blank">{{.Title}}</a></div><div class="meta">{{if .IsScholarly}}<strong>Authors:</strong> {{.Authors}}{{else}}{{.URL}}{{end}}</div><div class="summary">{{.Summary}}</div></div>{{end}}{{else}}<p>{{$.NoResults}}</p>{{end}}
{{end}}
    <div style="margin-top: 50px; text-align: center; color: #888; font-size: 0.8rem;">
        Generated by Research Aggregator
    </div>
</body>
</html>
`
