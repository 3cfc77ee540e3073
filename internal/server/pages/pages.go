// Package pages holds the inspector's templ components.
// The *_templ.go files are generated from the .templ sources with templ generate.
package pages

// SummaryElementID is the DOM id patched by the updates stream.
const SummaryElementID = "registry-summary"
