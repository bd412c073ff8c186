// Package schemas embeds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// ResumeDocument is the schema for imported resume documents.
//
//go:embed resume_document.schema.json
var ResumeDocument []byte
