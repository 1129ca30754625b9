// Package main hosts the lbrytools CLI entrypoint and command graph.
//
// The Cobra command tree exposes the daemon probe, the launcher, the name
// sanitizer, and the result printer to shell scripts. Configuration and
// logging are resolved once here so subcommands stay thin wrappers over the
// internal packages.
package main
