package probe

import (
	"fmt"
	"io"
	"net/http"
)

// Excerpt returns the first n characters of body, or body itself when it is
// shorter.
func Excerpt(body string, n int) string {
	if n <= 0 {
		return ""
	}

	i := 0
	for pos := range body {
		if i == n {
			return body[:pos]
		}
		i++
	}
	return body
}

// Report writes the human readable outcome of r to w, one fact per line.
func Report(w io.Writer, r *Result) {
	line := func(format string, args ...interface{}) {
		if r.Label != "" {
			fmt.Fprintf(w, "[%s] ", r.Label)
		}
		fmt.Fprintf(w, format+"\n", args...)
	}

	if r.StatusCode > 0 {
		line("status: %d", r.StatusCode)
	}
	if r.Error != "" {
		line("error: %s", r.Error)
	}
	if r.StatusCode == 0 {
		return
	}

	switch r.Method {
	case MethodHead:
		line("content-type: %s", headerOrMissing(r.Headers, "content-type"))
		line("location: %s", headerOrMissing(r.Headers, "location"))
	case MethodPost:
		if r.StatusCode != http.StatusOK {
			line("body: %s", r.Excerpt)
		}
	}
}

func headerOrMissing(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	return Missing
}
