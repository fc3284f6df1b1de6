package oauthstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	state, err := Generate(testSecret, "google", 10)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	provider, err := Parse(testSecret, state)
	require.NoError(t, err)
	assert.Equal(t, "google", provider)
}

func TestParse_StateExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	state, err := Generate(testSecret, "google", -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, state)
	assert.Error(t, err, "state expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	state, err := Generate(testSecret, "facebook", 10)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", state)
	assert.Error(t, err, "secret incorrecto debe invalidar el state")
}

func TestParse_StateMalformado_RetornaError(t *testing.T) {
	_, err := Parse(testSecret, "state.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := Generate("", "google", 10)
	assert.Error(t, err)
}
