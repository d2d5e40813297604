package cli

import (
	actx "go.hackfix.me/dashfeed/app/context"
	aerrors "go.hackfix.me/dashfeed/app/errors"
	"go.hackfix.me/dashfeed/board"
)

// The Routes command lists the widget endpoints served by the web server.
type Routes struct{}

// Run the routes command.
func (c *Routes) Run(appCtx *actx.Context) error {
	b := board.New(appCtx.TimeNow(), appCtx.TimeNow)

	routes := b.Routes()
	data := make([][]string, len(routes))
	for i, rt := range routes {
		data[i] = []string{rt.Method, board.Prefix + rt.Path, rt.Variant}
	}

	header := []string{"Method", "Path", "Variant"}
	if err := renderTable(header, data, appCtx.Stdout); err != nil {
		return aerrors.NewWithCause("failed rendering routes table", err)
	}

	return nil
}
