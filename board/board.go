// Package board implements the built-in dashboard board: a set of widget
// endpoints that expose metrics of the running process, such as its uptime,
// goroutine count, and memory usage.
package board

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.hackfix.me/dashfeed/web/server/handler"
	"go.hackfix.me/dashfeed/widget"
	"go.hackfix.me/dashfeed/xtime"
)

// Prefix is the canonical URL path prefix the board is mounted under.
const Prefix = "/widgets"

// Board exposes metrics of the running process as dashboard widgets.
type Board struct {
	startedAt time.Time
	timeNow   func() time.Time
}

// New creates a new Board. Uptime is measured relative to startedAt.
func New(startedAt time.Time, timeNow func() time.Time) *Board {
	return &Board{startedAt: startedAt, timeNow: timeNow}
}

// Handler returns an http.Handler that serves all board widgets. The given
// options are applied to every widget handler.
func (b *Board) Handler(opts ...handler.Option) http.Handler {
	mux := http.NewServeMux()
	for _, rt := range b.routes() {
		mux.Handle(rt.pattern, handler.Widget(rt.norm, rt.src, opts...))
	}

	return mux
}

// Route describes a widget endpoint served by the board. The path is relative
// to the prefix the board is mounted under.
type Route struct {
	Method  string
	Path    string
	Variant string
}

// Routes returns descriptions of the board's widget endpoints.
func (b *Board) Routes() []Route {
	rts := b.routes()
	routes := make([]Route, 0, len(rts))
	for _, rt := range rts {
		method, path, _ := strings.Cut(rt.pattern, " ")
		routes = append(routes, Route{Method: method, Path: path, Variant: rt.norm.Variant()})
	}

	return routes
}

type route struct {
	pattern string
	norm    widget.Normalizer
	src     handler.Source
}

func (b *Board) routes() []route {
	return []route{
		{"GET /goroutines", widget.Number, b.goroutines},
		{"GET /heap", widget.Meter, b.heap},
		{"GET /memory", widget.PieChart, b.memory},
		{"GET /uptime", widget.Text, b.uptime},
	}
}

// goroutines reports the number of currently running goroutines.
func (b *Board) goroutines(*http.Request) (any, error) {
	return runtime.NumGoroutine(), nil
}

// heap reports the allocated heap memory, relative to the total heap obtained
// from the OS.
func (b *Board) heap(*http.Request) (any, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return []any{ms.HeapAlloc, 0, ms.HeapSys}, nil
}

// memory reports a breakdown of the memory obtained from the OS.
func (b *Board) memory(*http.Request) (any, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	other := ms.Sys - ms.HeapInuse - ms.StackInuse
	return []any{
		[]any{ms.HeapInuse, "heap", "ff9900"},
		[]any{ms.StackInuse, "stack", "3333cc"},
		[]any{other, "other", "999999"},
	}, nil
}

// uptime reports how long the process has been running.
func (b *Board) uptime(*http.Request) (any, error) {
	up := b.timeNow().Sub(b.startedAt)
	return fmt.Sprintf("up %s", xtime.FormatDuration(up, time.Second)), nil
}
