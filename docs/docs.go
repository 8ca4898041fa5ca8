// Package docs registers the service's OpenAPI document with swag so that
// echo-swagger can serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"

	"oms/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

// ReadDoc renders the embedded OpenAPI document as JSON.
func (openAPIDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}

	raw, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
