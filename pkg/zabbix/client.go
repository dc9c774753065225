package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/zbxmap/pkg/buildinfo"
	zerr "github.com/matzehuels/zbxmap/pkg/errors"
	"github.com/matzehuels/zbxmap/pkg/observability"
)

// endpointFile is the JSON-RPC entry point below the frontend path.
const endpointFile = "api_jsonrpc.php"

// Endpoint builds the API URL from a host and a frontend path.
// host may already carry a scheme, in which case scheme is ignored.
//
//	Endpoint("http", "localhost", "/zabbix/") // http://localhost/zabbix/api_jsonrpc.php
func Endpoint(scheme, host, path string) string {
	base := host
	if !strings.Contains(host, "://") {
		base = scheme + "://" + host
	}
	return strings.TrimSuffix(base, "/") + path + endpointFile
}

// Client talks to one Zabbix server. It is not safe for concurrent use.
type Client struct {
	http     *http.Client
	endpoint string
	token    string
	server   *serverVersion
	nextID   int
}

// NewClient creates a Client for the given API endpoint URL.
// See [Endpoint] for building the URL.
func NewClient(endpoint string) *Client {
	return &Client{
		http:     &http.Client{},
		endpoint: endpoint,
	}
}

// URL returns the API endpoint.
func (c *Client) URL() string { return c.endpoint }

// LoggedIn reports whether the client holds a session token.
func (c *Client) LoggedIn() bool { return c.token != "" }

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	Auth    string `json:"auth,omitempty"`
	ID      int    `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      int             `json:"id"`
}

// RPCError is a JSON-RPC error object returned by the server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("%s %s (code %d)", e.Message, e.Data, e.Code)
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Call performs an authenticated JSON-RPC call and decodes the result into v.
// Pass nil for v to discard the result.
func (c *Client) Call(ctx context.Context, method string, params, v any) error {
	if !c.LoggedIn() {
		return zerr.New(zerr.ErrCodeUnauthorized, "%s: not logged in", method)
	}
	return c.call(ctx, method, params, v, true)
}

// call performs one request and reports it to the registered RPC hooks.
func (c *Client) call(ctx context.Context, method string, params, v any, authed bool) error {
	hooks := observability.RPC()
	start := time.Now()
	hooks.OnCall(ctx, method)
	err := c.do(ctx, method, params, v, authed)
	hooks.OnResult(ctx, method, time.Since(start), err)
	return err
}

func (c *Client) do(ctx context.Context, method string, params, v any, authed bool) error {
	c.nextID++
	req := request{JSONRPC: "2.0", Method: method, Params: params, ID: c.nextID}
	bearer := false
	if authed {
		if c.server.bearerAuth() {
			bearer = true
		} else {
			req.Auth = c.token
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return zerr.Wrap(zerr.ErrCodeInternal, err, "encode %s", method)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zerr.Wrap(zerr.ErrCodeInvalidInput, err, "%s", method)
	}
	httpReq.Header.Set("Content-Type", "application/json-rpc")
	httpReq.Header.Set("User-Agent", buildinfo.UserAgent())
	if bearer {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return zerr.Wrap(zerr.ErrCodeNetwork, err, "%s", method)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return zerr.Wrap(zerr.ErrCodeNetwork, err, "%s", method)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zerr.Wrap(zerr.ErrCodeZabbixAPI, err, "%s: decode response", method)
	}
	if out.Error != nil {
		return zerr.Wrap(zerr.ErrCodeZabbixAPI, out.Error, "%s", method)
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(out.Result, v); err != nil {
		return zerr.Wrap(zerr.ErrCodeZabbixAPI, err, "%s: decode result", method)
	}
	return nil
}

func checkStatus(code int) error {
	if code == http.StatusOK {
		return nil
	}
	return fmt.Errorf("status %d", code)
}
