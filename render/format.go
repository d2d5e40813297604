package render

import "net/http"

const (
	// FormatParam is the request parameter naming the wire format.
	FormatParam = "format"
	// objectNotation is the parameter value that selects JSON. Every
	// other value, including none at all, selects XML.
	objectNotation = "2"
)

// Negotiate returns the name of the renderer the request asks for. A
// format value in a form body takes precedence over one in the query
// string.
func Negotiate(r *http.Request) string {
	format := r.PostFormValue(FormatParam)
	if format == "" {
		format = r.URL.Query().Get(FormatParam)
	}
	if format == objectNotation {
		return NameJSON
	}

	return NameXML
}
