// Package analysis derives closed-form descriptions of the flow that the
// presentation layer overlays on sampled data.
package analysis
