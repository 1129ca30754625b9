package lbrynet

import (
	"errors"
	"fmt"
)

// DefaultServer is the address lbrynet listens on out of the box.
const DefaultServer = "http://localhost:5279"

// StatusRequest is the JSON-RPC body for the status method.
type StatusRequest struct {
	Method string `json:"method"`
}

// StatusResult carries the fields of the status result the tooling inspects.
type StatusResult struct {
	IsRunning bool `json:"is_running"`
}

// StatusReply is the decoded status response. Result is nil when the daemon
// answered without a result field.
type StatusReply struct {
	Result *StatusResult `json:"result"`
}

// Running reports whether the reply says the daemon is fully running.
func (r *StatusReply) Running() bool {
	return r != nil && r.Result != nil && r.Result.IsRunning
}

// ErrMalformedReply indicates the daemon answered with a body that could not be decoded.
var ErrMalformedReply = errors.New("malformed daemon reply")

// UnreachableError reports that no HTTP exchange with the daemon took place.
type UnreachableError struct {
	Server string
	Err    error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot reach lbrynet at %s: %v", e.Server, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }
