package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// showBodySchema checks the JSON shape of a show body before it is decoded.
// Field rules are applied afterwards by the show validator, so an empty
// dateAdded passes here and is reported as a missing DateAdded.
const showBodySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "id":               {"type": ["integer", "null"]},
    "showType":         {"type": ["string", "null"]},
    "title":            {"type": ["string", "null"]},
    "director":         {"type": ["string", "null"]},
    "castMembers":      {"type": ["string", "null"]},
    "country":          {"type": ["string", "null"]},
    "dateAdded":        {"type": ["string", "null"], "pattern": "^$|^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "releaseYear":      {"type": ["integer", "null"]},
    "rating":           {"type": ["integer", "null"]},
    "durationInMinute": {"type": ["integer", "null"]},
    "listedIn":         {"type": ["string", "null"]},
    "description":      {"type": ["string", "null"]}
  }
}`

type shapeError struct {
	Problems []string
}

func (e *shapeError) Error() string {
	return "invalid request body: " + strings.Join(e.Problems, "; ")
}

func compileShowBodySchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource("show.json", strings.NewReader(showBodySchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("show.json")
}

func checkShape(sch *jsonschema.Schema, body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return &shapeError{Problems: []string{fmt.Sprintf("malformed json: %v", err)}}
	}
	if err := sch.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &shapeError{Problems: collectSchemaErrors(ve)}
		}
		return &shapeError{Problems: []string{err.Error()}}
	}
	return nil
}

func collectSchemaErrors(ve *jsonschema.ValidationError) []string {
	var msgs []string
	for _, cause := range ve.Causes {
		msgs = append(msgs, collectSchemaErrors(cause)...)
	}
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		msgs = append(msgs, loc+": "+ve.Message)
	}
	return msgs
}
