package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"go.hackfix.me/dashfeed/render"
	"go.hackfix.me/dashfeed/widget"
)

// Source retrieves the raw result for a widget request, e.g. by reading
// process stats or querying an external system. The result is passed to the
// widget's normalizer before rendering.
type Source func(r *http.Request) (any, error)

// Widget assembles an http.Handler that runs the full widget pipeline:
// authentication, data retrieval, normalization, and rendering in the format
// selected by the request.
func Widget(n widget.Normalizer, src Source, opts ...Option) http.Handler {
	h := &widgetHandler{
		norm:      n,
		src:       src,
		renderers: render.Default(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Option is a function that allows configuring the widget handler.
type Option func(*widgetHandler)

// WithAuth sets the authenticator that guards the handler.
func WithAuth(auth Authenticator) Option {
	return func(h *widgetHandler) {
		h.auth = auth
	}
}

// WithLogger sets the logger used by the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *widgetHandler) {
		h.logger = logger
	}
}

// WithRegistry sets the renderer registry used by the handler.
func WithRegistry(reg *render.Registry) Option {
	return func(h *widgetHandler) {
		h.renderers = reg
	}
}

type widgetHandler struct {
	norm      widget.Normalizer
	src       Source
	auth      Authenticator
	renderers *render.Registry
	logger    *slog.Logger
}

func (h *widgetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.auth != nil {
		if err := h.auth(r); err != nil {
			h.writeError(w, err)
			return
		}
	}

	result, err := h.src(r)
	if err != nil {
		h.logger.Error("failed retrieving widget data",
			"variant", h.norm.Variant(), "error", err.Error())
		h.writeError(w, err)
		return
	}

	payload, err := h.norm.Normalize(result)
	if err != nil {
		h.logger.Error("failed normalizing widget data",
			"variant", h.norm.Variant(), "error", err.Error())
		h.writeError(w, err)
		return
	}

	rdr, err := h.renderers.Get(render.Negotiate(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	body, err := rdr.Render(payload)
	if err != nil {
		h.logger.Error("failed rendering widget payload",
			"variant", h.norm.Variant(), "renderer", rdr.Name(), "error", err.Error())
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", rdr.ContentType())
	if _, err = w.Write(body); err != nil {
		h.logger.Error("failed writing response", "error", err.Error())
	}
}

// writeError writes an error response. Messages of errors other than *Error
// are internal details, and are not returned to clients.
func (h *widgetHandler) writeError(w http.ResponseWriter, err error) {
	var herr *Error
	if errors.As(err, &herr) && herr.StatusCode != 0 {
		http.Error(w, herr.Message, herr.StatusCode)
		return
	}

	http.Error(w, http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError)
}
