package cli

import (
	"github.com/harshx-2005/linkup-sub001/pkg/probe"
)

const DefaultAPIAddress = "http://localhost:9102"

type APIClient struct {
	apiAddress string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
	}
}

func (api *APIClient) Status() *TypedAPIResponse[probe.StatusResponse] {
	client, u, err := api.buildHTTPClientAndURL("/status")
	if err != nil {
		return &TypedAPIResponse[probe.StatusResponse]{Error: err}
	}
	return NewTypedAPIResponse(probe.StatusResponse{})(client.Get(u.String()))
}

func (api *APIClient) Probe(name string) *TypedAPIResponse[probe.ProbeStatus] {
	client, u, err := api.buildHTTPClientAndURL("/v1/probe/" + name)
	if err != nil {
		return &TypedAPIResponse[probe.ProbeStatus]{Error: err}
	}
	return NewTypedAPIResponse(probe.ProbeStatus{})(client.Get(u.String()))
}

func (api *APIClient) Stream() APIResponse {
	dialer, u, err := api.buildWebsocketURL("/v1/stream")
	if err != nil {
		return &StreamingAPIResponse{err: err}
	}
	return NewStreamingAPIResponse(u, dialer)
}
