package randomorg

import (
	"encoding/json"
	"fmt"
)

// Reserved JSON-RPC error codes. The service uses further codes of its own
// for quota and parameter errors; those arrive unchanged in RPCError.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// TransportError reports that no usable HTTP response was obtained: dial,
// TLS or timeout failures, or a non-200 status. The call is not retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "randomorg: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON or lacks the
// expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "randomorg: parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// RPCError is the error object of a JSON-RPC response, code and message
// exactly as the service returned them.
type RPCError struct {
	Code    int
	Message string
	Data    json.RawMessage
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("randomorg: rpc error %d: %s", e.Code, e.Message)
}
