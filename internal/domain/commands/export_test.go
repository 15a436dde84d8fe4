package commands

// LooksLikeRemoteURL exports looksLikeRemoteURL for testing.
var LooksLikeRemoteURL = looksLikeRemoteURL //nolint:gochecknoglobals // test export
