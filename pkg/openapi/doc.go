// Package openapi imports an OpenAPI 3 operation's request body as a form
// schema. It flattens the document's object schema into the engine's
// six-type field model; anything the model cannot express (nested objects,
// free-form arrays) is skipped rather than approximated.
package openapi
