package render

import (
	"fmt"
	"html/template"
	"strings"
)

// The page tree mirrors the A4-ish fixed canvas the PDF converter
// expects: 794x1123 px at 96dpi.
var pageTmpl = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { margin: 0; font-family: Helvetica, Arial, sans-serif; background: #f3f4f6; }
  .scale-wrapper { transform: scale({{printf "%.2f" .Zoom}}); transform-origin: top center; }
  #{{.ContainerID}} { width: 794px; min-height: 1123px; margin: 0 auto; padding: 32px; box-sizing: border-box; background: {{.Style.BodyBG}}; color: {{.Style.BodyFG}}; }
  .header { background: {{.Style.HeaderBG}}; color: {{.Style.HeaderFG}}; padding: 24px; margin-bottom: 32px; }
  .header h1 { font-size: 30px; margin: 0 0 4px 0; }
  .header .title { font-size: 20px; margin: 0 0 12px 0; }
  .header .contact div { font-size: 13px; line-height: 1.5; }
  section { margin-bottom: 24px; }
  section h2 { font-size: 20px; margin: 0 0 8px 0; }
  section hr { border: 0; border-top: 1px solid {{.Style.Rule}}; margin: 0 0 12px 0; }
  .item { margin-bottom: 16px; }
  .item h3 { font-size: 15px; margin: 0; }
  .item .sub { font-size: 13px; opacity: 0.8; margin: 0; }
  .item .meta { font-size: 13px; opacity: 0.7; margin: 0 0 8px 0; }
  .item ul { margin: 4px 0 0 20px; padding: 0; }
  .inline span { display: inline-block; margin: 0 16px 4px 0; }
  p { margin: 0 0 6px 0; line-height: 1.6; white-space: pre-line; }
</style>
</head>
<body>
<div class="scale-wrapper">
<div id="{{.ContainerID}}">
  <div class="header">
    <h1>{{.Doc.Header.Name}}</h1>
    <p class="title">{{.Doc.Header.Title}}</p>
    <div class="contact">{{range .Doc.Header.Contact}}<div>{{.}}</div>{{end}}</div>
  </div>
{{range .Doc.Sections}}  <section>
    <h2>{{.Title}}</h2>
    <hr>
{{if .Inline}}    <div class="inline">{{range .Inline}}<span>{{.}}</span>{{end}}</div>
{{end}}{{range .Paragraphs}}    <p>{{.}}</p>
{{end}}{{range .Items}}    <div class="item">
{{if .Heading}}      <h3>{{.Heading}}</h3>
{{end}}{{if .Subheading}}      <p class="sub">{{.Subheading}}</p>
{{end}}{{if .Meta}}      <p class="meta">{{.Meta}}</p>
{{end}}{{range .Lines}}      <p class="sub">{{.}}</p>
{{end}}{{if .Bullets}}      <ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
{{end}}    </div>
{{end}}  </section>
{{end}}</div>
</div>
</body>
</html>
`))

type pageData struct {
	Doc         Document
	Style       Style
	Zoom        float64
	ContainerID string
}

// HTML renders the document at the given zoom. Zoom scales only the
// wrapper transform; the container content is identical at every zoom
// so text and PDF exports are zoom-invariant.
func (d Document) HTML(zoom float64) (string, error) {
	var b strings.Builder
	err := pageTmpl.Execute(&b, pageData{
		Doc:         d,
		Style:       d.Template.Style(),
		Zoom:        ClampZoom(zoom),
		ContainerID: ContainerID,
	})
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}
