package github

import (
	"fmt"
	"net/http"
	"net/http/httputil"
)

// DebugTransport wraps an HTTP transport and logs requests/responses
type DebugTransport struct {
	Transport http.RoundTripper
}

func (d *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return nil, fmt.Errorf("failed to dump request: %w", err)
	}
	fmt.Printf(">>> Request:\n%s\n", string(reqDump))

	resp, err := d.Transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, fmt.Errorf("failed to dump response: %w", err)
	}
	fmt.Printf("<<< Response:\n%s\n", string(respDump))

	return resp, nil
}
