// internal/submission/response.go
package submission

import (
	"encoding/json"

	"application-submitter/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// receiptSchema describes the only shape that counts as a confirmed
// submission: an object whose success field is boolean true and whose receipt
// field is present. The receipt type is deliberately unconstrained.
const receiptSchema = `{
	"type": "object",
	"required": ["success", "receipt"],
	"properties": {
		"success": {"enum": [true]}
	}
}`

var receiptSchemaLoader = gojsonschema.NewStringLoader(receiptSchema)

// Interpret parses the response body and classifies it. Unparseable bodies
// are a format error carrying the raw bytes; parseable bodies that fail the
// schema are a shape error carrying the re-encoded structure. Only a schema
// match yields a Result.
func Interpret(body []byte) (*Result, *errors.StandardError) {
	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.NewResponseFormatError(string(body))
	}

	validation, err := gojsonschema.Validate(receiptSchemaLoader, gojsonschema.NewGoLoader(parsed))
	if err != nil || !validation.Valid() {
		reencoded, merr := json.Marshal(parsed)
		if merr != nil {
			return nil, errors.NewResponseShapeError(string(body))
		}
		return nil, errors.NewResponseShapeError(string(reencoded))
	}

	obj := parsed.(map[string]interface{})
	return &Result{Receipt: obj["receipt"]}, nil
}
