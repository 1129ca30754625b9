// Package daemonctl decides whether the lbrynet daemon is up and starts it
// when it is not.
//
// A Probe answers "is the daemon running?" and, when the answer is no, asks a
// Launcher to start it before returning. Two probe strategies exist side by
// side: HTTPProbe asks the daemon for its status over JSON-RPC, ProcessProbe
// looks the daemon up in the process table. They disagree on edge cases (a
// daemon that is still starting answers the HTTP probe with is_running=false
// but already shows up in the process table), so they stay separate and New
// picks one from configuration.
package daemonctl
