package probe

import "context"

const (
	MethodHead = "HEAD"
	MethodPost = "POST"

	DefaultExcerptLength = 200
)

// Missing is rendered in place of a response header that was not sent.
const Missing = "None"

// Probe issues exactly one outbound request per Exec call.
type Probe interface {
	Name() string
	Exec(ctx context.Context) *Result
}

// Result is the outcome of a single probe. A zero StatusCode means no
// response was received.
type Result struct {
	Label       string            `json:"label,omitempty"`
	Method      string            `json:"method"`
	URL         string            `json:"url"`
	RequestBody []byte            `json:"-"`
	StatusCode  int               `json:"statusCode,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Excerpt     string            `json:"excerpt,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// OK reports whether a response with a status below 400 was received
// without a transport error.
func (r *Result) OK() bool {
	return r.Error == "" && r.StatusCode > 0 && r.StatusCode < 400
}

// Redacted returns a copy of r that is safe to serialise.
func (r *Result) Redacted() *Result {
	c := *r
	c.URL = RedactURL(r.URL)
	c.RequestBody = nil
	return &c
}

type ProbeStatus struct {
	Name       string `json:"-"`
	OK         bool   `json:"ok"`
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message,omitempty"`
}

type StatusResponse struct {
	Probes map[string]*ProbeStatus `json:"probes"`
}

func statusFromResult(name string, r *Result) *ProbeStatus {
	s := &ProbeStatus{Name: name, OK: r.OK(), StatusCode: r.StatusCode, Message: r.Error}
	if s.Message == "" && !s.OK {
		s.Message = r.Excerpt
	}
	return s
}
