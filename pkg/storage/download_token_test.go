package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadTokenRoundTrip(t *testing.T) {
	signer := NewDownloadTokenSigner("secret", time.Minute)

	token, expiresAt, err := signer.Generate("doc-1", "2024/arquivo.pdf")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	docID, path, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", docID)
	assert.Equal(t, "2024/arquivo.pdf", path)
}

func TestDownloadTokenRejectsTampering(t *testing.T) {
	signer := NewDownloadTokenSigner("secret", time.Minute)
	token, _, err := signer.Generate("doc-1", "2024/arquivo.pdf")
	require.NoError(t, err)

	other := NewDownloadTokenSigner("other-secret", time.Minute)
	_, _, err = other.Parse(token)
	assert.Error(t, err)
}

func TestDownloadTokenExpires(t *testing.T) {
	signer := NewDownloadTokenSigner("secret", -time.Minute)
	token, _, err := signer.Generate("doc-1", "2024/arquivo.pdf")
	require.NoError(t, err)

	_, _, err = signer.Parse(token)
	assert.Error(t, err)
}

func TestDownloadTokenRequiresArguments(t *testing.T) {
	signer := NewDownloadTokenSigner("secret", time.Minute)
	_, _, err := signer.Generate("", "path")
	assert.Error(t, err)
	_, _, err = signer.Generate("doc-1", "")
	assert.Error(t, err)
}
