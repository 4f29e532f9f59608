package printer

import "html/template"

// printTemplate is the standalone printable document. Page boxes carry
// the exact live-editing geometry; hard breaks separate pages; every
// page carries its number in the footer band.
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page {
  size: {{.PageWidth}}px {{.PageHeight}}px;
  margin: 0;
}
html, body {
  margin: 0;
  padding: 0;
}
.page {
  width: {{.PageWidth}}px;
  height: {{.PageHeight}}px;
  padding: {{.MarginTop}}px {{.MarginRight}}px {{.MarginBottom}}px {{.MarginLeft}}px;
  box-sizing: border-box;
  position: relative;
  overflow: hidden;
  page-break-after: always;
  background: #fff;
}
.page:last-child {
  page-break-after: auto;
}
.page-header {
  height: {{.HeaderHeight}}px;
}
.page-content {
  width: {{.ContentWidth}}px;
  height: {{.ContentHeight}}px;
  overflow: hidden;
}
.page-footer {
  height: {{.FooterHeight}}px;
  position: absolute;
  left: {{.MarginLeft}}px;
  right: {{.MarginRight}}px;
  bottom: {{.MarginBottom}}px;
}
.page-number {
  position: absolute;
  bottom: 0;
  right: 0;
  font-size: 11px;
  color: #666;
}
</style>
</head>
<body>
{{- range .Pages}}
<div class="page">
<div class="page-header"></div>
<div class="page-content">{{.Content}}</div>
<div class="page-footer"><span class="page-number">Page {{.Number}} of {{$.PageCount}}</span></div>
</div>
{{- end}}
</body>
</html>
`))

// printData is the template payload.
type printData struct {
	Title         string
	PageWidth     float64
	PageHeight    float64
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	HeaderHeight  float64
	FooterHeight  float64
	ContentWidth  float64
	ContentHeight float64
	PageCount     int
	Pages         []printPage
}

type printPage struct {
	Number  int
	Content template.HTML
}
