package probe

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harshx-2005/linkup-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProbePostOKPrintsNoExcerpt(t *testing.T) {
	var gotBody, gotType string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer s.Close()

	p, err := NewHTTP("text", MethodPost, s.URL, []byte(`{"contents":[]}`))
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, 200, res.StatusCode)
	assert.Empty(t, res.Error)
	assert.Empty(t, res.Excerpt)
	assert.Equal(t, `{"contents":[]}`, gotBody)
	assert.Equal(t, "application/json", gotType)

	var out bytes.Buffer
	Report(&out, res)
	assert.Equal(t, "[text] status: 200\n", out.String())
}

func TestHTTPProbePostNon200TruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("é", 150) + strings.Repeat("x", 150)
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(long))
	}))
	defer s.Close()

	p, err := NewHTTP("", MethodPost, s.URL, []byte(`{}`))
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, 400, res.StatusCode)
	assert.Equal(t, 200, len([]rune(res.Excerpt)))
	assert.True(t, strings.HasPrefix(long, res.Excerpt))

	var out bytes.Buffer
	Report(&out, res)
	assert.Equal(t, "status: 400\nbody: "+res.Excerpt+"\n", out.String())
}

func TestHTTPProbePostNon200ShortBodyIsKeptWhole(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403}}`, http.StatusForbidden)
	}))
	defer s.Close()

	p, err := NewHTTP("text", MethodPost, s.URL, []byte(`{}`))
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, 403, res.StatusCode)
	assert.Equal(t, "{\"error\":{\"code\":403}}\n", res.Excerpt)
}

func TestHTTPProbeHeadReportsHeaders(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusOK)
	}))
	defer s.Close()

	p, err := NewHTTP("image", MethodHead, s.URL, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	Report(&out, p.Exec(context.Background()))

	assert.Equal(t, "[image] status: 200\n[image] content-type: image/jpeg\n[image] location: None\n", out.String())
}

func TestHTTPProbeHeadDoesNotFollowRedirects(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://cdn.example.com/image.jpg", http.StatusFound)
	}))
	defer s.Close()

	p, err := NewHTTP("image", MethodHead, s.URL, nil)
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://cdn.example.com/image.jpg", res.Headers["location"])
}

func TestHTTPProbeUnresolvableHostIsReported(t *testing.T) {
	p, err := NewHTTP("gone", MethodHead, "http://linkup-does-not-exist.invalid/?key=secret", nil)
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, 0, res.StatusCode)
	assert.NotEmpty(t, res.Error)
	assert.NotContains(t, res.Error, "secret")

	var out bytes.Buffer
	Report(&out, res)
	assert.True(t, strings.HasPrefix(out.String(), "[gone] error: "))
	assert.NotContains(t, out.String(), "status:")
}

func TestNewHTTPRejectsUnsupportedMethods(t *testing.T) {
	_, err := NewHTTP("x", "GET", "http://example.com", nil)
	assert.ErrorContains(t, err, `unsupported method "GET"`)

	_, err = NewHTTP("x", MethodHead, "http://example.com", []byte("{}"))
	assert.ErrorContains(t, err, "cannot carry a payload")

	_, err = NewHTTP("x", MethodHead, "", nil)
	assert.ErrorContains(t, err, "no url given")
}

func TestNewHTTPDefaultsMethodFromPayload(t *testing.T) {
	p, err := NewHTTP("x", "", "http://example.com", []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, MethodPost, p.Method())

	p, err = NewHTTP("x", "", "http://example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, MethodHead, p.Method())
}

func TestNewHTTPProbeResolvesConfig(t *testing.T) {
	t.Setenv("LINKUP_PROBE_KEY", "k3y")
	t.Setenv("LINKUP_PROBE_METHOD", "post")

	var gotURL, gotTrace string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		gotTrace = r.Header.Get("X-Trace")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer s.Close()

	p, err := NewHTTPProbe(&config.Probe{
		Name:    "cfg",
		Method:  "ENV:LINKUP_PROBE_METHOD",
		URL:     s.URL + `/generate?key={{ env "LINKUP_PROBE_KEY" }}`,
		Payload: `{"text":"hi"}`,
		Headers: map[string]string{"X-Trace": "linkup"},
		Excerpt: 4,
		Timeout: "5s",
	})
	require.NoError(t, err)

	res := p.Exec(context.Background())

	assert.Equal(t, "/generate?key=k3y", gotURL)
	assert.Equal(t, "linkup", gotTrace)
	assert.Equal(t, "slow", res.Excerpt)
	assert.Equal(t, "cfg", res.Label)
}

func TestNewHTTPProbeRejectsBadTimeout(t *testing.T) {
	_, err := NewHTTPProbe(&config.Probe{Name: "cfg", URL: "http://example.com", Timeout: "soon"})

	assert.ErrorContains(t, err, `invalid timeout duration for probe "cfg"`)
}
