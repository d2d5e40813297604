package app

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"go.hackfix.me/dashfeed/app/config"
	"go.hackfix.me/dashfeed/crypto"
)

func TestAppKey(t *testing.T) {
	t.Parallel()

	tctx, cancel, h := newTestContext(t, 5*time.Second)
	defer cancel()

	app, err := newTestApp(tctx)
	h(assert.NoError(t, err))

	err = app.Run("key", "new")
	h(assert.NoError(t, err))

	key1 := strings.TrimSuffix(app.stdout.String(), "\n")
	h(assert.NotContains(t, key1, "\n"))
	rawKey, err := base58.Decode(key1)
	h(assert.NoError(t, err))
	h(assert.Len(t, rawKey, crypto.APIKeySize))

	// Without --save the configuration file must not be created.
	_, err = vfs.ReadFile(app.ctx.FS, "/config.json")
	h(assert.True(t, vfs.IsErrNotExist(err)))

	err = app.Run("key", "new", "--save")
	h(assert.NoError(t, err))

	key2 := strings.TrimSuffix(app.stdout.String(), "\n")
	h(assert.NotEqual(t, key1, key2))

	cfgJSON, err := vfs.ReadFile(app.ctx.FS, "/config.json")
	h(assert.NoError(t, err))
	var cfg config.Config
	err = json.Unmarshal(cfgJSON, &cfg)
	h(assert.NoError(t, err))
	h(assert.True(t, cfg.Auth.APIKey.Valid))
	h(assert.Equal(t, key2, cfg.Auth.APIKey.V))
}
