package renderer

import "embed"

// templates holds the markdown templates. A template named "<base>_<part>.md"
// is a partial of the "<base>.md" assembly.
//
//go:embed *.md
var templates embed.FS
