package fetch

import (
	"fmt"
	"strings"
)

// BuildTarget assembles the host:port/path target string for a request.
// Leading slashes are stripped from path before joining, so "/home" and
// "home" produce the identical target.
func BuildTarget(host string, port int, path string) (string, error) {
	if host == "" {
		return "", NewValidationError("host must not be empty")
	}
	if strings.ContainsAny(host, "/: ") {
		return "", NewValidationError(fmt.Sprintf("invalid host %q", host))
	}
	if port < 0 || port > 65535 {
		return "", NewValidationError(fmt.Sprintf("invalid port %d", port))
	}
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s:%d/%s", host, port, path), nil
}
