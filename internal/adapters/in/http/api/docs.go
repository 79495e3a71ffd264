package api

import (
	"github.com/swaggo/swag"
)

// doc serves the embedded document to the swagger UI as JSON.
type doc struct{}

func (doc) ReadDoc() string {
	swagger, err := GetSwagger()
	if err != nil {
		return "{}"
	}

	raw, err := swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// RegisterDocs makes the document available to echo-swagger under the default
// instance name. Registering twice is a no-op.
func RegisterDocs() {
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return
	}
	swag.Register(swag.Name, doc{})
}
