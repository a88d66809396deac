package cli

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// endpoint resolves path against the API address. Unix socket addresses
// (unix:///run/linkup.sock) are rewritten to a placeholder host and the
// socket path is returned separately.
func (api *APIClient) endpoint(path string) (*url.URL, string, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, "", err
	}

	socketPath := ""
	if u.Scheme == "unix" {
		socketPath = u.Path
		u = &url.URL{Scheme: "http", Host: "unix"}
	}

	u.Path = strings.TrimRight(u.Path, "/") + path
	return u, socketPath, nil
}

func (api *APIClient) buildHTTPClientAndURL(path string) (*http.Client, *url.URL, error) {
	u, socketPath, err := api.endpoint(path)
	if err != nil {
		return nil, nil, err
	}
	if socketPath == "" {
		return &http.Client{}, u, nil
	}

	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socketPath)
			},
		},
	}, u, nil
}

func (api *APIClient) buildWebsocketURL(path string) (*websocket.Dialer, *url.URL, error) {
	u, socketPath, err := api.endpoint(path)
	if err != nil {
		return nil, nil, err
	}

	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}

	if socketPath == "" {
		return websocket.DefaultDialer, u, nil
	}

	return &websocket.Dialer{
		NetDial: func(_, _ string) (net.Conn, error) {
			return net.Dial("unix", socketPath)
		},
	}, u, nil
}
