// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// strict strips all HTML. Submitted forum and application text is stored
// and rendered as plain text, so markup is never allowed through.
var strict = bluemonday.StrictPolicy()

// Sanitize removes all HTML tags and attributes from s.
func Sanitize(s string) string {
	return strict.Sanitize(s)
}
