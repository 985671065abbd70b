package commands

import (
	"embed"
	"io/fs"
)

//go:embed docs
var docsFS embed.FS

// helpTopics returns the embedded topic files rooted at the docs dir.
// A nil result simply leaves the help system without extra topics.
func helpTopics() fs.FS {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return nil
	}
	return sub
}
