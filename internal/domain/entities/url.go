package entities

import "strings"

const (
	// DefaultHost is the PingCode host every configured URL falls back to.
	DefaultHost = "open.pingcode.com"
	// APISuffix is appended to the host to address the REST API.
	APISuffix = "/api/v3"

	httpProtocol  = "http://"
	httpsProtocol = "https://"
	dotGit        = ".git"
)

// StripProtocolPrefix removes the scheme or the SSH user part of a URL.
//
//	git@open.pingcode.com:owner/repo.git -> open.pingcode.com/owner/repo.git
//	https://open.pingcode.com/owner/repo -> open.pingcode.com/owner/repo
func StripProtocolPrefix(url string) string {
	if index := strings.IndexByte(url, '@'); index != -1 {
		return strings.ReplaceAll(url[index+1:], ":", "/")
	}
	if index := strings.Index(url, "://"); index != -1 {
		return url[index+len("://"):]
	}
	return url
}

// StripTrailingSlash removes a single trailing slash.
func StripTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// StripPort drops the ":port" segment that follows the host.
// Only meaningful on the output of StripProtocolPrefix.
func StripPort(url string) string {
	index := strings.IndexByte(url, ':')
	if index == -1 {
		return url
	}
	slashIndex := strings.IndexByte(url, '/')
	if slashIndex != -1 && slashIndex < index {
		return url
	}

	beforePort := url[:index]
	if slashIndex == -1 {
		return beforePort
	}
	return beforePort + url[slashIndex:]
}

// APIProtocol returns "http://" only when the configured URL explicitly asks for it.
func APIProtocol(configuredURL string) string {
	trimmed := strings.TrimSpace(configuredURL)
	if len(trimmed) >= len(httpProtocol) && strings.EqualFold(trimmed[:len(httpProtocol)], httpProtocol) {
		return httpProtocol
	}
	return httpsProtocol
}

// HostFromURL returns the bare host of a URL.
//
//	https://open.pingcode.com/suffix/ -> open.pingcode.com
//	open.pingcode.com:8080/           -> open.pingcode.com
func HostFromURL(url string) string {
	path := strings.ReplaceAll(StripProtocolPrefix(url), ":", "/")
	if index := strings.IndexByte(path, '/'); index != -1 {
		return path[:index]
	}
	return path
}

// APIURLWithoutProtocol resolves the API location of the configured URL.
// Custom hosts are not supported yet and resolve to the default host.
func APIURLWithoutProtocol(configuredURL string) string {
	url := StripTrailingSlash(StripProtocolPrefix(strings.ToLower(configuredURL)))

	switch url {
	case DefaultHost:
		return url + APISuffix
	case DefaultHost + APISuffix:
		return url
	default:
		return DefaultHost + APISuffix
	}
}

// APIURL is the full API base URL for the configured URL.
func APIURL(configuredURL string) string {
	return APIProtocol(configuredURL) + APIURLWithoutProtocol(configuredURL)
}

// IsMatchingHost reports whether url points at the host of configuredHostURL.
// The host must be followed by the end of the string, a port or a path, so
// "open.pingcode.com" never matches "open.pingcode.com.evil.com".
func IsMatchingHost(url, configuredHostURL string) bool {
	host := HostFromURL(configuredHostURL)
	url = StripProtocolPrefix(url)
	if !strings.HasPrefix(url, host) {
		return false
	}
	if len(url) == len(host) {
		return true
	}
	next := url[len(host)]
	return next == ':' || next == '/'
}

// RepositoryPathFromRemoteURL extracts owner and repository from a remote URL.
//
//	git@open.pingcode.com:owner/repo.git -> owner/repo
func RepositoryPathFromRemoteURL(remoteURL string) (RepositoryPath, bool) {
	remoteURL = StripProtocolPrefix(stripDotGit(remoteURL))

	index1 := strings.LastIndexByte(remoteURL, '/')
	if index1 == -1 {
		return RepositoryPath{}, false
	}
	prefix := remoteURL[:index1]
	index2 := max(strings.LastIndexByte(prefix, '/'), strings.LastIndexByte(prefix, ':'))
	if index2 == -1 {
		return RepositoryPath{}, false
	}

	owner := remoteURL[index2+1 : index1]
	repository := remoteURL[index1+1:]
	if owner == "" || repository == "" {
		return RepositoryPath{}, false
	}
	return NewRepositoryPath(owner, repository), true
}

// RepoURLFromRemoteURL builds "host/owner/repo" for a remote URL.
func RepoURLFromRemoteURL(remoteURL, host string) (string, bool) {
	path, ok := RepositoryPathFromRemoteURL(remoteURL)
	if !ok {
		return "", false
	}
	return host + "/" + path.Owner + "/" + path.Repository, true
}

func stripDotGit(url string) string {
	return strings.TrimSuffix(StripTrailingSlash(url), dotGit)
}

// APIEndpoint is the protocol and host (with API suffix) derived from a configured URL.
type APIEndpoint struct {
	Protocol       string
	HostWithSuffix string
}

// NewAPIEndpoint derives the endpoint for the configured URL.
func NewAPIEndpoint(configuredURL string) APIEndpoint {
	return APIEndpoint{
		Protocol:       APIProtocol(configuredURL),
		HostWithSuffix: APIURLWithoutProtocol(configuredURL),
	}
}

// IsHTTP reports whether the endpoint is addressed over plain HTTP.
func (e APIEndpoint) IsHTTP() bool { return e.Protocol == httpProtocol }

func (e APIEndpoint) String() string { return e.Protocol + e.HostWithSuffix }
