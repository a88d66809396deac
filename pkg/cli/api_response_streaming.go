package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/harshx-2005/linkup-sub001/pkg/probe"
)

var _ APIResponse = &StreamingAPIResponse{}

// StreamingAPIResponse reports probe results as the server sends them.
type StreamingAPIResponse struct {
	url    *url.URL
	dialer *websocket.Dialer
	err    error
}

func NewStreamingAPIResponse(url *url.URL, dialer *websocket.Dialer) *StreamingAPIResponse {
	return &StreamingAPIResponse{
		url:    url,
		dialer: dialer,
	}
}

func (resp *StreamingAPIResponse) Err() error {
	return resp.err
}

func (resp *StreamingAPIResponse) Print(w io.Writer) error {
	if resp.err != nil {
		return resp.err
	}

	conn, _, err := resp.dialer.Dial(resp.url.String(), nil)
	if err != nil {
		resp.err = fmt.Errorf("error dialing to %s: %w", resp.url.String(), err)
		return resp.err
	}
	defer conn.Close()

	for {
		var result probe.Result
		if err := conn.ReadJSON(&result); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			resp.err = err
			return err
		}

		probe.Report(w, &result)
	}
}
