package render

// authorPageTemplate renders one page of an author's post listing. It is
// presentational only: author identity, optional profile link and socials,
// then the post list with prev/next pagination.
const authorPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Author.Name }}{{ if .Author.Name }} - {{ end }}{{ .SiteTitle }}</title>
{{- if .Description }}
<meta name="description" content="{{ .Description }}">
{{- end }}
</head>
<body>
<header class="author-header">
{{- if .Author.ImageURL }}
  <img class="author-avatar" src="{{ .Author.ImageURL }}" alt="{{ .Author.Name }}">
{{- end }}
  <h1>{{ .Author.Name }}</h1>
{{- if .Author.Title }}
  <p class="author-title">{{ .Author.Title }}</p>
{{- end }}
{{- if .Author.URL }}
  <p><a class="author-link" href="{{ .Author.URL }}" rel="noopener" target="_blank">{{ .Author.URL }}</a></p>
{{- end }}
{{- if .Author.Email }}
  <p><a class="author-email" href="mailto:{{ .Author.Email }}">{{ .Author.Email }}</a></p>
{{- end }}
{{- if .Socials }}
  <ul class="author-socials">
{{- range .Socials }}
    <li><a href="{{ .URL }}" rel="noopener" target="_blank">{{ .Platform }}</a></li>
{{- end }}
  </ul>
{{- end }}
</header>
<main>
{{- if .Posts }}
<ul class="author-post-list">
{{- range .Posts }}
  <li>
    <h2><a href="{{ .Permalink }}">{{ .Title }}</a></h2>
    <time datetime="{{ .Date.Format "2006-01-02" }}">{{ .Date.Format "January 2, 2006" }}</time>
{{- if .ExcerptHTML }}
    <div class="post-excerpt">{{ .ExcerptHTML }}</div>
{{- end }}
  </li>
{{- end }}
</ul>
{{- else }}
<p>No posts yet.</p>
{{- end }}
{{- if gt .TotalPages 1 }}
<nav class="pagination">
{{- if .PrevURL }}
  <a class="pagination-prev" href="{{ .PrevURL }}">Newer posts</a>
{{- end }}
  <span class="pagination-page">Page {{ .Page }} of {{ .TotalPages }}</span>
{{- if .NextURL }}
  <a class="pagination-next" href="{{ .NextURL }}">Older posts</a>
{{- end }}
</nav>
{{- end }}
</main>
<footer>
  <a href="{{ .IndexURL }}">All authors</a>
</footer>
</body>
</html>
`

// authorsIndexTemplate renders the authors overview page.
const authorsIndexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Authors - {{ .SiteTitle }}</title>
</head>
<body>
<h1>Authors</h1>
<ul class="authors-list">
{{- range .Authors }}
  <li>
{{- if .ImageURL }}
    <img class="author-avatar" src="{{ .ImageURL }}" alt="{{ .Name }}">
{{- end }}
    <a href="{{ .Permalink }}">{{ .Name }}</a>
    <span class="author-post-count">{{ .PostCount }} post{{ if ne .PostCount 1 }}s{{ end }}</span>
  </li>
{{- end }}
</ul>
</body>
</html>
`
