package storage

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerGenerateAndParse(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Generate("job-1", "job-1/photo.jpg")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	jobID, path, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, "job-1/photo.jpg", path)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Millisecond*10)
	token, _, err := signer.Generate("job-1", "job-1/photo.jpg")
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 20)

	_, _, _, err = signer.Parse(token)
	require.Error(t, err)
}

func TestSignedURLSignerRejectsTampered(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("job-1", "job-1/photo.jpg")
	require.NoError(t, err)

	_, _, _, err = signer.Parse("job-2" + token[len("job-1"):])
	require.Error(t, err)
}

func TestPhotoStoreSaveOpenRemove(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("job-1", "photo-1", "brakes.JPG", bytes.NewReader([]byte("image-bytes")))
	require.NoError(t, err)
	require.Equal(t, "job-1/photo-1.jpg", rel)

	file, err := store.Open(rel)
	require.NoError(t, err)
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	require.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(rel))
	_, err = store.Open(rel)
	require.Error(t, err)
}

func TestPhotoStoreRejectsTraversal(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../outside.jpg")
	require.Error(t, err)
	_, err = store.Open("/etc/passwd")
	require.Error(t, err)
}

func TestPhotoStoreRemoveJob(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("job-1", "photo-1", "a.png", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.RemoveJob("job-1"))
	_, err = store.Open(rel)
	require.Error(t, err)

	require.Error(t, store.RemoveJob("../job-1"))
}
