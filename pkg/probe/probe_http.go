package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harshx-2005/linkup-sub001/internal/config"
	"github.com/harshx-2005/linkup-sub001/internal/helper"
	"github.com/harshx-2005/linkup-sub001/pkg/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var _ Probe = &HTTPProbe{}

type HTTPProbe struct {
	name    string
	method  string
	url     string
	payload []byte
	headers map[string]string
	excerpt int
	client  *http.Client
}

// NewHTTP builds a probe without any timeout, relying on the transport
// defaults. An empty method means POST when a payload is given and HEAD
// otherwise.
func NewHTTP(label, method, target string, payload []byte) (*HTTPProbe, error) {
	return newHTTPProbe(label, method, target, payload, nil, DefaultExcerptLength, 0)
}

// NewHTTPProbe builds a probe from its configuration. "ENV:" references are
// resolved and the url and payload are rendered as templates.
func NewHTTPProbe(cfg *config.Probe) (*HTTPProbe, error) {
	target, err := render.String(cfg.Name+".url", helper.ResolveEnv(cfg.URL), nil)
	if err != nil {
		return nil, err
	}

	payload, err := render.String(cfg.Name+".payload", helper.ResolveEnv(cfg.Payload), nil)
	if err != nil {
		return nil, err
	}

	var timeout time.Duration
	if t := helper.ResolveEnv(cfg.Timeout); t != "" {
		timeout, err = time.ParseDuration(t)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid timeout duration for probe %q", cfg.Name)
		}
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = helper.ResolveEnv(v)
	}

	excerpt := cfg.Excerpt
	if excerpt == 0 {
		excerpt = DefaultExcerptLength
	}

	return newHTTPProbe(cfg.Name, helper.ResolveEnv(cfg.Method), target, []byte(payload), headers, excerpt, timeout)
}

func newHTTPProbe(label, method, target string, payload []byte, headers map[string]string, excerpt int, timeout time.Duration) (*HTTPProbe, error) {
	defaultMethod := MethodHead
	if len(payload) > 0 {
		defaultMethod = MethodPost
	}
	method = strings.ToUpper(helper.SetDefaultStringIfEmpty(method, defaultMethod, "method", label))

	switch method {
	case MethodHead:
		if len(payload) > 0 {
			return nil, fmt.Errorf("probe %q: HEAD probes cannot carry a payload", label)
		}
	case MethodPost:
	default:
		return nil, fmt.Errorf("probe %q: unsupported method %q, expected HEAD or POST", label, method)
	}

	if target == "" {
		return nil, fmt.Errorf("probe %q: no url given", label)
	}
	if _, err := url.Parse(target); err != nil {
		return nil, errors.Wrapf(err, "probe %q: invalid url", label)
	}

	if excerpt < 0 {
		return nil, fmt.Errorf("probe %q: excerpt length must not be negative", label)
	}

	client := &http.Client{Timeout: timeout}
	if method == MethodHead {
		// a redirect is an answer worth reporting, its location included
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &HTTPProbe{
		name:    label,
		method:  method,
		url:     target,
		payload: payload,
		headers: headers,
		excerpt: excerpt,
		client:  client,
	}, nil
}

func (h *HTTPProbe) Name() string {
	return h.name
}

func (h *HTTPProbe) Method() string {
	return h.method
}

func (h *HTTPProbe) Exec(ctx context.Context) *Result {
	res := &Result{
		Label:       h.name,
		Method:      h.method,
		URL:         h.url,
		RequestBody: h.payload,
	}

	var body io.Reader
	if len(h.payload) > 0 {
		body = bytes.NewReader(h.payload)
	}

	req, err := http.NewRequestWithContext(ctx, h.method, h.url, body)
	if err != nil {
		res.Error = redactError(err)
		return res
	}

	for k, v := range h.headers {
		req.Header.Set(k, v)
	}
	if len(h.payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	fields := log.Fields{"kind": "probe", "name": h.name, "method": h.method, "host": req.URL.Host}

	resp, err := h.client.Do(req)
	if err != nil {
		res.Error = redactError(err)
		log.WithFields(fields).WithField("err", res.Error).Debug("request failed")
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Headers = make(map[string]string)
	for _, name := range []string{"Content-Type", "Location"} {
		if v := resp.Header.Get(name); v != "" {
			res.Headers[strings.ToLower(name)] = v
		}
	}

	if h.method == MethodPost {
		out, err := io.ReadAll(resp.Body)
		if err != nil {
			res.Error = redactError(errors.Wrap(err, "failed to read response body"))
		}
		if resp.StatusCode != http.StatusOK {
			res.Excerpt = Excerpt(string(out), h.excerpt)
		}
	}

	log.WithFields(fields).WithField("status", res.StatusCode).Debug("response received")
	return res
}

// BuildFromCatalog turns every configured probe into an HTTPProbe.
func BuildFromCatalog(probes []config.Probe) ([]Probe, error) {
	result := make([]Probe, 0, len(probes))
	for i := range probes {
		p, err := NewHTTPProbe(&probes[i])
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// redactError renders err without the credentials net/http includes
// through the request URL.
func redactError(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = RedactURL(uerr.URL)
	}
	return err.Error()
}
