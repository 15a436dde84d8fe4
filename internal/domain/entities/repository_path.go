package entities

import (
	"fmt"
	"strings"
)

// RepositoryPath identifies a repository on a server by owner and name.
type RepositoryPath struct {
	Owner      string
	Repository string
}

// NewRepositoryPath creates a RepositoryPath.
func NewRepositoryPath(owner, repository string) RepositoryPath {
	return RepositoryPath{Owner: owner, Repository: repository}
}

// ParseRepositoryPath parses the "owner/repo" shorthand accepted on the command line.
func ParseRepositoryPath(raw string) (RepositoryPath, error) {
	owner, repository, found := strings.Cut(strings.Trim(strings.TrimSpace(raw), "/"), "/")
	if !found || owner == "" || repository == "" || strings.Contains(repository, "/") {
		return RepositoryPath{}, fmt.Errorf("invalid repository %q, expected owner/repo", raw)
	}
	return NewRepositoryPath(owner, strings.TrimSuffix(repository, dotGit)), nil
}

// StringWithOwner renders "owner/repo", or only the repository name.
func (p RepositoryPath) StringWithOwner(showOwner bool) string {
	if showOwner {
		return p.Owner + "/" + p.Repository
	}
	return p.Repository
}

func (p RepositoryPath) String() string { return p.StringWithOwner(true) }

// Equal compares owner and repository ignoring case, as the server does.
func (p RepositoryPath) Equal(other RepositoryPath) bool {
	return strings.EqualFold(p.Owner, other.Owner) && strings.EqualFold(p.Repository, other.Repository)
}

// RepositoryCoordinates locates a repository on a specific server.
type RepositoryCoordinates struct {
	Server ServerPath
	Path   RepositoryPath
}

// ToURL renders the browsable URL of the repository.
func (c RepositoryCoordinates) ToURL() string {
	return c.Server.ToURL(true) + "/" + c.Path.String()
}

func (c RepositoryCoordinates) String() string {
	return c.Server.String() + "/" + c.Path.String()
}

// Equal compares coordinates by server and path.
func (c RepositoryCoordinates) Equal(other RepositoryCoordinates) bool {
	return c.Server.Equal(other.Server, false) && c.Path.Equal(other.Path)
}
