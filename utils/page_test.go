package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
<body><h1>Jane   Doe</h1>
<p>Builds &amp; ships Go services</p>


<p>Open source</p></body></html>`

	assert.Equal(t, "Jane Doe\nBuilds & ships Go services\n\nOpen source", HTMLToText(html))
}

func TestPageFetcher_FetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<main><h2>Projects</h2><script>x()</script><p>kvstore</p></main>"))
	}))
	defer srv.Close()

	fetcher := NewPageFetcher(NewHTTPClient(5 * time.Second))

	text, err := fetcher.FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Projects kvstore", text)

	_, err = fetcher.FetchText(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "status 404")

	_, err = fetcher.FetchText(context.Background(), "file:///etc/passwd")
	assert.Error(t, err)
}
