package nix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/nix"
)

func TestParseShowConfig(t *testing.T) {
	doc := `{
		"experimental-features": {"value": ["nix-command", "flakes"], "description": "..."},
		"keep-outputs": {"value": true},
		"store": {"value": "auto"}
	}`

	config, err := nix.ParseShowConfig([]byte(doc))
	require.NoError(t, err)

	features, err := config.Strings("experimental-features")
	require.NoError(t, err)
	assert.Equal(t, []string{"nix-command", "flakes"}, features)

	keepOutputs, err := config.Bool("keep-outputs")
	require.NoError(t, err)
	assert.True(t, keepOutputs)

	// A plain string value is treated as a single-element list.
	store, err := config.Strings("store")
	require.NoError(t, err)
	assert.Equal(t, []string{"auto"}, store)
}

func TestParseShowConfig_InvalidJSON(t *testing.T) {
	_, err := nix.ParseShowConfig([]byte("not json"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestObservedConfig_MissingAttribute(t *testing.T) {
	config, err := nix.ParseShowConfig([]byte(`{}`))
	require.NoError(t, err)

	_, err = config.Strings("substituters")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	_, err = config.Bool("keep-outputs")
	require.Error(t, err)
}

func TestObservedConfig_TypeMismatch(t *testing.T) {
	config, err := nix.ParseShowConfig([]byte(`{"keep-outputs":{"value":true}}`))
	require.NoError(t, err)

	_, err = config.Strings("keep-outputs")
	require.Error(t, err)

	config, err = nix.ParseShowConfig([]byte(`{"substituters":{"value":["a"]}}`))
	require.NoError(t, err)

	_, err = config.Bool("substituters")
	require.Error(t, err)
}
