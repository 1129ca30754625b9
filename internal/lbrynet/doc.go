// Package lbrynet talks to the lbrynet daemon's JSON-RPC endpoint over HTTP.
//
// It covers the two calls the tooling needs before touching the daemon: a
// status request that reports whether the daemon finished starting, and a
// bare reachability ping. Transport failures surface as *UnreachableError and
// undecodable replies wrap ErrMalformedReply so callers can tell the two apart
// with errors.As / errors.Is.
package lbrynet
