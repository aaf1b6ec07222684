// Package randomorg is a client for the Random.org JSON-RPC Basic API.
package randomorg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	v "github.com/cohesivestack/valgo"
	"github.com/rs/zerolog"

	"github.com/sebamiro/randomorg/internal/rpc"
)

// Endpoint is the invoke URL of the Basic API.
const Endpoint = "https://api.random.org/json-rpc/4/invoke"

// Methods
const (
	GenerateIntegers         = "generateIntegers"
	GenerateIntegerSequences = "generateIntegerSequences"
	GenerateDecimalFractions = "generateDecimalFractions"
	GenerateGaussians        = "generateGaussians"
	GenerateStrings          = "generateStrings"
	GenerateUUIDs            = "generateUUIDs"
	GenerateBlobs            = "generateBlobs"
	GetUsage                 = "getUsage"
)

// HTTP is the transport used to execute requests. *http.Client satisfies it.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Basic API. Construct with New; the exported fields may be
// set before the first call. A Client holds no mutable state besides the
// request id counter, so it is safe for concurrent use as long as its
// transport is.
type Client struct {
	// URL of the JSON-RPC endpoint. Defaults to Endpoint.
	URL string
	// HTTP executes the requests. Defaults to http.DefaultClient; set an
	// *http.Client with a Timeout to bound calls.
	HTTP HTTP
	// Logger emits one debug event per call. Discards by default.
	Logger zerolog.Logger

	apiKey string
	id     atomic.Uint64
}

// New returns a Client authenticating every request with the given API key.
func New(apiKey string) (*Client, error) {
	if val := v.Is(v.String(apiKey, "apiKey").Not().Blank()); !val.Valid() {
		return nil, val.Error()
	}
	return &Client{
		URL:    Endpoint,
		Logger: zerolog.Nop(),
		apiKey: apiKey,
	}, nil
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) url() string {
	if c.URL == "" {
		return Endpoint
	}
	return c.URL
}

// call posts one JSON-RPC request and returns the raw result field.
func (c *Client) call(method string, params any) (json.RawMessage, error) {
	b, err := json.Marshal(rpc.Request{Version: rpc.Version, Method: method, Params: params, ID: c.id.Add(1)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.url(), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	start := time.Now()
	resp, err := c.http().Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	c.Logger.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("rpc call")
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Err: fmt.Errorf("bad status %s for %s", resp.Status, method)}
	}

	var r rpc.Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, &ParseError{Err: err}
	}
	if r.Error != nil {
		return nil, &RPCError{Code: r.Error.Code, Message: r.Error.Message, Data: r.Error.Data}
	}
	if r.Result == nil {
		return nil, &ParseError{Err: errors.New("response carries neither result nor error")}
	}
	return r.Result, nil
}

// GenerationInfo is the metadata the service returns alongside every
// generation: usage accounting and the advisory delay (milliseconds) the
// service asks clients to wait before the next request. The delay is
// reported, never enforced.
type GenerationInfo struct {
	CompletionTime string
	BitsUsed       int64
	BitsLeft       int64
	RequestsLeft   int64
	AdvisoryDelay  int64
}

type generation struct {
	Random struct {
		Data           json.RawMessage `json:"data"`
		CompletionTime string          `json:"completionTime"`
	} `json:"random"`
	BitsUsed      int64 `json:"bitsUsed"`
	BitsLeft      int64 `json:"bitsLeft"`
	RequestsLeft  int64 `json:"requestsLeft"`
	AdvisoryDelay int64 `json:"advisoryDelay"`
}

// generate invokes a generation method and decodes result.random.data into data.
func (c *Client) generate(method string, params, data any) (*GenerationInfo, error) {
	result, err := c.call(method, params)
	if err != nil {
		return nil, err
	}
	var g generation
	if err := json.Unmarshal(result, &g); err != nil {
		return nil, &ParseError{Err: err}
	}
	if g.Random.Data == nil {
		return nil, &ParseError{Err: errors.New("result has no random.data")}
	}
	if err := json.Unmarshal(g.Random.Data, data); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &GenerationInfo{
		CompletionTime: g.Random.CompletionTime,
		BitsUsed:       g.BitsUsed,
		BitsLeft:       g.BitsLeft,
		RequestsLeft:   g.RequestsLeft,
		AdvisoryDelay:  g.AdvisoryDelay,
	}, nil
}

// Call invokes any Basic API method with raw params, adds the API key, and
// decodes the whole result object into result. Escape hatch for params the
// typed methods do not cover, e.g. generateIntegers with base 16, whose data
// come back as strings.
func (c *Client) Call(method string, params map[string]any, result any) error {
	p := map[string]any{"apiKey": c.apiKey}
	for k, value := range params {
		p[k] = value
	}
	raw, err := c.call(method, p)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// Bool returns a pointer to b, for the optional replacement fields.
func Bool(b bool) *bool { return &b }
