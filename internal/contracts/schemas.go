// Package contracts validates CMS content-block payloads before they
// are persisted, so the public site never renders a malformed block.
package contracts

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const contentBlockSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"title":    { "type": "string", "minLength": 1 },
		"subtitle": { "type": "string" },
		"body":     { "type": "string" },
		"items": {
			"type": "array",
			"items": { "type": "object" }
		},
		"cta": {
			"type": "object",
			"properties": {
				"label": { "type": "string", "minLength": 1 },
				"href":  { "type": "string" }
			},
			"required": ["label"]
		}
	},
	"required": ["title"]
}`

var compiledContentBlock *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("content_block.schema.json", strings.NewReader(contentBlockSchema)); err != nil {
		panic(fmt.Sprintf("failed to add content block schema: %v", err))
	}
	compiledContentBlock = compiler.MustCompile("content_block.schema.json")
}

// ValidateContentBlock checks a content-block payload against the
// embedded schema. The returned error carries the schema violation
// details and is safe to show to a dashboard user.
func ValidateContentBlock(payload map[string]interface{}) error {
	// jsonschema validates over plain decoded JSON values
	doc := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		doc[k] = v
	}
	if err := compiledContentBlock.Validate(doc); err != nil {
		return fmt.Errorf("content block payload invalid: %w", err)
	}
	return nil
}
