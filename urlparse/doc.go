// Package urlparse decomposes a URL string into host, port, path, and
// query components, delegating URL-syntax interpretation to net/url.
//
// The scheme may be omitted: a bare "host/path" input is interpreted as
// http. The port defaults to 80 when absent; the path defaults to "/";
// the query defaults to the empty string.
package urlparse
