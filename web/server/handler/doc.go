// Package handler contains helpers to assemble widget HTTP handlers from
// reusable components: an optional authenticator, a data source, a payload
// normalizer, and the renderer selected by the request. Core handlers only
// implement the data retrieval that is unique to each widget.
package handler
