// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const createTaskSchema = `{
  "type": "object",
  "properties": {
    "query": {"type": ["string", "null"]},
    "action": {"type": ["string", "null"]},
    "parameters": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    }
  }
}`

const updateStatusSchema = `{
  "type": "object",
  "properties": {
    "status": {"type": "string"}
  }
}`

const createArtifactSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string"}
  },
  "required": ["type"]
}`

var (
	createTaskValidator     = mustSchema(createTaskSchema)
	updateStatusValidator   = mustSchema(updateStatusSchema)
	createArtifactValidator = mustSchema(createArtifactSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return s
}

// validate checks body against s. The returned error lists every violation.
func validate(s *gojsonschema.Schema, body []byte) error {
	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return badRequest("Invalid JSON", err.Error())
	}

	if !result.Valid() {
		var errs []string
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}
		return badRequest("Invalid request body", strings.Join(errs, "; "))
	}
	return nil
}
