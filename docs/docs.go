// Package docs carries the committed swagger document served at /api/docs.
package docs

import _ "embed"

//go:embed swagger.json
var Swagger []byte
