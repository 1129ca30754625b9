package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary lbrytools relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports whether a requirement resolves to an executable. Path is
// the file exec would run, so users can tell which lbrynet the launcher picks
// when several are installed.
type Status struct {
	Requirement
	Path      string
	Available bool
	Detail    string
}

// CheckBinaries resolves every requirement against PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, checkBinary(req))
	}
	return results
}

func checkBinary(req Requirement) Status {
	req.Command = strings.TrimSpace(req.Command)
	req.Description = strings.TrimSpace(req.Description)
	status := Status{Requirement: req}

	if req.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(req.Command)
	if err != nil {
		status.Detail = lookupDetail(req.Command)
		return status
	}
	status.Path = path
	status.Available = true
	return status
}

func lookupDetail(command string) string {
	if strings.ContainsRune(command, '/') {
		return fmt.Sprintf("%s is missing or not executable", command)
	}
	return fmt.Sprintf("binary %q not found on PATH", command)
}
