package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// serverURLPattern splits a server URL into schema, host, port and suffix.
var serverURLPattern = regexp.MustCompile(`(?i)^(https?://)?([^/?:]+)(:(\d+))?((/[^/?#]+)*)?/?$`)

// ServerPath is a parsed server location. UseHTTP and Port are nil when the
// source URL did not specify them.
type ServerPath struct {
	UseHTTP *bool
	Host    string
	Port    *int
	Suffix  string
}

// DefaultServer is the server used when nothing else is configured.
func DefaultServer() ServerPath {
	return ServerPath{Host: DefaultHost}
}

// ParseServerPath parses a server URL such as "https://open.pingcode.com:8443/prefix".
func ParseServerPath(uri string) (ServerPath, error) {
	matches := serverURLPattern.FindStringSubmatch(uri)
	if matches == nil {
		return ServerPath{}, NewParseError("Not a valid URL", nil)
	}

	var server ServerPath
	if schema := matches[1]; schema != "" {
		useHTTP := strings.EqualFold(schema, httpProtocol)
		server.UseHTTP = &useHTTP
	}

	server.Host = matches[2]
	if server.Host == "" {
		return ServerPath{}, NewParseError("Empty host", nil)
	}

	if portGroup := matches[4]; portGroup != "" {
		port, err := strconv.Atoi(portGroup)
		if err != nil {
			return ServerPath{}, NewParseError("Invalid port format", err)
		}
		server.Port = &port
	}

	server.Suffix = matches[5]
	return server, nil
}

// Schema returns "http" or "https".
func (s ServerPath) Schema() string {
	if s.UseHTTP != nil && *s.UseHTTP {
		return "http"
	}
	return "https"
}

// ToHostURL renders schema, host and port.
func (s ServerPath) ToHostURL() string {
	return s.schemaPart() + s.Host + s.portPart()
}

// ToURL renders host, port and suffix, optionally with the schema.
func (s ServerPath) ToURL(showSchema bool) string {
	var builder strings.Builder
	if showSchema {
		builder.WriteString(s.schemaPart())
	}
	builder.WriteString(s.Host)
	builder.WriteString(s.portPart())
	builder.WriteString(s.Suffix)
	return builder.String()
}

// ToAPIURL renders the REST API base for this server.
func (s ServerPath) ToAPIURL() string {
	if s.IsDefaultHost() {
		return s.schemaPart() + s.Host + s.portPart() + APISuffix + s.Suffix
	}
	return s.schemaPart() + s.Host + s.portPart() + s.Suffix + APISuffix
}

// IsDefaultHost reports whether the server is the public PingCode host.
func (s ServerPath) IsDefaultHost() bool {
	return strings.EqualFold(s.Host, DefaultHost)
}

// Equal compares two server paths, optionally ignoring the schema.
func (s ServerPath) Equal(other ServerPath, ignoreProtocol bool) bool {
	return (ignoreProtocol || equalPointers(s.UseHTTP, other.UseHTTP)) &&
		s.Host == other.Host &&
		equalPointers(s.Port, other.Port) &&
		s.Suffix == other.Suffix
}

func (s ServerPath) String() string {
	schema := ""
	if s.UseHTTP != nil {
		schema = s.schemaPart()
	}
	return schema + s.Host + s.portPart() + s.Suffix
}

func (s ServerPath) schemaPart() string {
	return s.Schema() + "://"
}

func (s ServerPath) portPart() string {
	if s.Port == nil {
		return ""
	}
	return ":" + strconv.Itoa(*s.Port)
}

func equalPointers[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
