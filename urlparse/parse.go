package urlparse

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/kbukum/fetchkit/errors"
)

const defaultPort = 80

// Parts holds the decomposed components of a URL. Each field is an
// independently owned value; none aliases the input string's backing data
// beyond what Go string slicing implies.
type Parts struct {
	// Host is the host name, without port.
	Host string
	// Port is the numeric port, 80 when the URL does not specify one.
	Port int
	// Path is the request path, "/" when the URL does not specify one.
	Path string
	// Query is the raw query string, "" when the URL does not specify one.
	Query string
}

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Parse decomposes raw into its host, port, path, and query components.
// A missing scheme is guessed as http before parsing. On failure no Parts
// are produced: a malformed port or an empty host fails the whole
// operation.
func Parse(raw string) (Parts, error) {
	if raw == "" {
		return Parts{}, errors.InvalidInput("url", "must not be empty")
	}

	guessed := raw
	if !schemePrefix.MatchString(raw) {
		guessed = "http://" + raw
	}

	u, err := url.Parse(guessed)
	if err != nil {
		return Parts{}, errors.InvalidInput("url", "malformed URL").WithCause(err)
	}

	host := u.Hostname()
	if host == "" {
		return Parts{}, errors.InvalidInput("url", "missing host")
	}

	port := defaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 0 {
			return Parts{}, errors.InvalidInput("url", "malformed port").WithCause(err)
		}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	return Parts{
		Host:  host,
		Port:  port,
		Path:  path,
		Query: u.RawQuery,
	}, nil
}
