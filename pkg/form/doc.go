// Package form holds the state machine behind one interactive form instance:
// value accumulation under overwrite and toggle disciplines, derived
// completeness, submission assembly, and the submit/cancel lifecycle.
package form
