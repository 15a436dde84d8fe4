package entities

// User is the account behind the access token.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is a repository as returned by the REST API.
type Repository struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	SSHURL        string `json:"ssh_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// BugInput holds what is needed to file a bug.
type BugInput struct {
	Title string
	Body  string
}

// Bug is a bug work item created on the server.
type Bug struct {
	ID      int64  `json:"id"`
	Number  string `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// GitRemote is a named remote of a local git checkout.
type GitRemote struct {
	Name string
	URLs []string
}

// ResolvedRemote is a remote URL that points at the configured server.
type ResolvedRemote struct {
	RemoteName string
	URL        string
	Path       RepositoryPath
	RepoURL    string
}
