package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

type APIResponse interface {
	Print(w io.Writer) error
	Err() error
}

var _ APIResponse = &TypedAPIResponse[struct{}]{}

type TypedAPIResponse[TBody any] struct {
	StatusCode  int   `json:"statusCode"`
	Body        TBody `json:"body"`
	Error       error `json:"error"`
	contentType string
}

func NewTypedAPIResponse[TBody any](body TBody) func(resp *http.Response, err error) *TypedAPIResponse[TBody] {
	return func(resp *http.Response, err error) *TypedAPIResponse[TBody] {
		apiRes := TypedAPIResponse[TBody]{
			Error: err,
		}
		if resp == nil {
			return &apiRes
		}
		defer resp.Body.Close()

		apiRes.StatusCode = resp.StatusCode
		apiRes.contentType = strings.Split(resp.Header.Get("Content-Type"), ";")[0]

		out, err := io.ReadAll(resp.Body)
		if err != nil {
			apiRes.Error = errors.Wrap(err, "failed to read body")
			return &apiRes
		}

		switch apiRes.contentType {
		case "application/json":
			if err := json.Unmarshal(out, &body); err != nil {
				apiRes.Error = errors.Wrapf(err, "failed to parse body as JSON")
				return &apiRes
			}
		case "text/plain":
			apiRes.Error = errors.New(strings.TrimSpace(string(out)))
			return &apiRes
		default:
			apiRes.Error = fmt.Errorf("unknown content type %q", apiRes.contentType)
			return &apiRes
		}

		apiRes.Body = body

		return &apiRes
	}
}

func (resp *TypedAPIResponse[TBody]) Err() error {
	return resp.Error
}

func (resp *TypedAPIResponse[TBody]) Print(w io.Writer) error {
	if resp.Error != nil {
		fmt.Fprintln(w, resp.Error.Error())
		return nil
	}

	jsonBody, err := json.Marshal(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal body as JSON")
	}

	fmt.Fprint(w, string(pretty.Color(pretty.Pretty(jsonBody), nil)))
	return nil
}
