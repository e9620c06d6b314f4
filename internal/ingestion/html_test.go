package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/textutil"
)

func TestHTMLToText_JobPosting(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head><style>body { color: red; }</style></head>
<body>
<nav>Navigation</nav>
<div class="job-description">
<h1>Senior Software Engineer</h1>
<p>Requirements: Go, Kubernetes.<br>Must have 5+ years.</p>
<ul><li>Build APIs</li><li>Own services</li></ul>
<script>alert('test');</script>
</div>
<div class="advertisement">Buy now</div>
<footer>Footer</footer>
</body>
</html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "Senior Software Engineer\nRequirements: Go, Kubernetes.\nMust have 5+ years.\n- Build APIs\n- Own services", text)
}

func TestHTMLToText_FallbackToBody(t *testing.T) {
	text, err := HTMLToText(`<html><body><h1>Title</h1><p>Content</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Title\nContent", text)
}

func TestHTMLToText_TablesStayDetectable(t *testing.T) {
	html := `<html><body><table>
<tr><td>Go</td><td>Python</td><td>SQL</td></tr>
<tr><td>Docker</td><td>AWS</td><td>Linux</td></tr>
</table></body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Go | Python | SQL")
	assert.True(t, textutil.DetectTableStructure(textutil.Lines(text)))
}
