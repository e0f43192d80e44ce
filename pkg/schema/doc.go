// Package schema defines the runtime field schema a form instance is driven
// by, derives the stable keys used to address field values, and loads schema
// documents from JSON or YAML sources.
package schema
