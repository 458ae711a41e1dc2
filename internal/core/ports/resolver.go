package ports

// FileResolver maps resource file URIs ("ws://...", "app://...",
// "fs://...") to filesystem paths and answers existence queries against
// them.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type FileResolver interface {
	// Resolve maps the URI to an absolute filesystem path. It fails only
	// on an unknown scheme, not on a missing file.
	Resolve(uri string) (string, error)

	// Exists reports whether the URI resolves to an existing file or
	// directory. An unresolvable URI does not exist.
	Exists(uri string) bool
}
