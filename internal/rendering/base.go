package rendering

// resetCSS is the shared page scaffold: box reset, system font stack with
// web-safe fallbacks, and the fixed A4-equivalent content width. Every
// theme embeds it so the produced document is fully self-contained.
const resetCSS = `
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: 'PingFang SC', 'Microsoft YaHei', sans-serif;
      line-height: 1.6;
      color: #374151;
      background: white;
    }

    .resume {
      max-width: 210mm;
      margin: 0 auto;
      padding: 20px;
      background: white;
    }

    @media print {
      body {
        -webkit-print-color-adjust: exact;
        print-color-adjust: exact;
      }
      .resume {
        margin: 0;
        padding: 15px;
      }
    }
`

// pageOpen and pageClose bracket a theme's CSS and header/section markup
// into one complete document. Concatenated with theme text at parse time.
const pageOpen = `{{define "page"}}<!DOCTYPE html>
<html lang="zh-CN">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{with .Resume.PersonalInfo.FullName}}{{.}}{{else}}简历{{end}}</title>
  <style>` + resetCSS

const pageClose = `</style>
</head>
<body>
  <div class="resume">
{{template "header" .Resume}}
{{range .Sections}}{{.}}{{end}}
  </div>
</body>
</html>
{{end}}`
