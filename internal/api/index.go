package api

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed usage.md
var usageMarkdown []byte

var (
	indexOnce sync.Once
	indexPage []byte
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>toctidy</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
form { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-bottom: 2rem; }
label { display: block; margin: 0.5rem 0 0.2rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
<form method="post" action="/api/format" enctype="multipart/form-data">
	<label for="file">Document (.docx or .txt)</label>
	<input type="file" id="file" name="file" accept=".docx,.txt" required>
	<label for="margin_column">Margin column</label>
	<input type="number" id="margin_column" name="margin_column" placeholder="78">
	<button type="submit">Format</button>
</form>
{{.Usage}}
</body>
</html>
`))

// handleIndex serves the upload page with the usage notes rendered from the
// embedded Markdown.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	indexOnce.Do(func() {
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		var usage bytes.Buffer
		if err := md.Convert(usageMarkdown, &usage); err != nil {
			s.log.Error("render usage markdown", "error", err)
		}
		var page bytes.Buffer
		err := indexTemplate.Execute(&page, struct{ Usage template.HTML }{
			Usage: template.HTML(usage.String()),
		})
		if err != nil {
			s.log.Error("render index page", "error", err)
		}
		indexPage = page.Bytes()
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
