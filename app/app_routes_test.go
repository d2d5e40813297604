package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppRoutes(t *testing.T) {
	t.Parallel()

	tctx, cancel, h := newTestContext(t, 5*time.Second)
	defer cancel()

	app, err := newTestApp(tctx)
	h(assert.NoError(t, err))

	err = app.Run("routes")
	h(assert.NoError(t, err))

	expStdout := "" +
		" METHOD  PATH                 VARIANT \n" +
		" GET     /widgets/goroutines  number  \n" +
		" GET     /widgets/heap        meter   \n" +
		" GET     /widgets/memory      pie     \n" +
		" GET     /widgets/uptime      text    \n"
	h(assert.Equal(t, expStdout, app.stdout.String()))
}
