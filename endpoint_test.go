package filestation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	flat, err := Flatten(reg)
	require.NoError(t, err)

	leaves := 0
	for name, ent := range reg {
		if ent.IsLeaf() {
			leaves++
			assert.Equal(t, ent.Endpoint, flat[name], name)
			continue
		}
		for sub, ep := range ent.Group {
			leaves++
			got, ok := flat[name+"_"+sub]
			if assert.True(t, ok, "missing %s_%s", name, sub) {
				assert.Equal(t, ep, got)
			}
		}
	}
	assert.Equal(t, leaves, len(flat), "every leaf has a unique public name")
}

func TestDefaultRegistryOperations(t *testing.T) {
	flat, err := Flatten(DefaultRegistry())
	require.NoError(t, err)

	tests := []struct {
		op      string
		api     string
		version int
		method  string
	}{
		{OpInfo, ApiInfo, 2, "get"},
		{OpLogin, ApiAuth, 3, "login"},
		{OpLogout, ApiAuth, 1, "logout"},
		{OpListFolder, ApiList, 2, "list"},
		{OpListShare, ApiList, 2, "list_share"},
		{OpSearchClean, ApiSearch, 2, "clean"},
		{OpCheckPermission, ApiCheckPerm, 3, "write"},
		{OpDownload, ApiDownload, 2, "download"},
		{OpSharingLinkClearInvalid, ApiSharing, 3, "clear_invalid"},
		{OpDeleteAsyncStart, ApiDelete, 2, "start"},
		{OpDelete, ApiDelete, 2, "delete"},
		{OpBackgroundTaskClearFinished, ApiBackgroundTask, 3, "clear_finished"},
	}
	for _, tt := range tests {
		ep, ok := flat[tt.op]
		require.True(t, ok, tt.op)
		assert.Equal(t, tt.api, ep.Api, tt.op)
		assert.Equal(t, tt.version, ep.Version, tt.op)
		assert.Equal(t, tt.method, ep.Method, tt.op)
		assert.Equal(t, "GET", ep.HttpMethod, tt.op)
	}

	up := flat[OpUpload]
	assert.Equal(t, "POST", up.HttpMethod)
	assert.Equal(t, ApiUpload, up.Api)

	for name, ep := range flat {
		if name != OpUpload {
			assert.Equal(t, "GET", ep.HttpMethod, name)
		}
	}
}

func TestFlattenCustomRegistry(t *testing.T) {
	reg := Registry{
		"ping": leaf(get("SYNO.Private.Ping", 1, "ping")),
		"vault": {Group: map[string]Endpoint{
			"open":  {Api: "SYNO.Private.Vault", Version: 2, Method: "open", HttpMethod: "GET", Path: "vault.cgi"},
			"close": get("SYNO.Private.Vault", 2, "close"),
		}},
	}
	flat, err := Flatten(reg)
	require.NoError(t, err)
	assert.Len(t, flat, 3)
	assert.Equal(t, "vault.cgi", flat["vault_open"].Path)
	assert.Equal(t, "close", flat["vault_close"].Method)
}

func TestFlattenErrors(t *testing.T) {
	_, err := Flatten(Registry{
		"list_share": leaf(get(ApiList, 2, "list_share")),
		"list":       {Group: map[string]Endpoint{"share": get(ApiList, 2, "list_share")}},
	})
	assert.ErrorContains(t, err, "duplicate operation name")

	_, err = Flatten(Registry{"empty": {}})
	assert.Error(t, err)

	_, err = Flatten(Registry{"g": {Group: map[string]Endpoint{"x": {Method: "x"}}}})
	assert.ErrorContains(t, err, "has no api")
}

func TestDefaultRegistryIsFresh(t *testing.T) {
	a := DefaultRegistry()
	a["info"] = leaf(get("changed", 9, "x"))
	b := DefaultRegistry()
	assert.Equal(t, ApiInfo, b["info"].Api)
}
