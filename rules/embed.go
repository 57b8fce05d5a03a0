package rules

import "embed"

// Files stores the declarative scoring and guidance tables embedded into the binary.
//
//go:embed *.yaml
var Files embed.FS
