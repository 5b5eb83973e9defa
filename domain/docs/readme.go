// Package docs holds the tool's README document. The text is fixed at
// build time; generation is deterministic and takes no run-time input.
package docs

import (
	_ "embed"
)

// Filename is the name the document is written under.
const Filename = "README.md"

//go:embed readme.md
var template string

// SectionHeaders lists the document's section headers in the order they
// must appear. Each occurs exactly once in the template.
var SectionHeaders = []string{
	"## Features",
	"## Requirements",
	"## Installation",
	"## Usage",
	"### Interactive Mode",
	"### Command Line Mode",
	"## Examples",
	"## Notes",
	"## Troubleshooting",
	"## License",
}

// Generate returns the README document text.
func Generate() string {
	return template
}
