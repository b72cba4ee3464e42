package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := []byte{0x67, 0x6C, 0x54, 0x46, 0x02, 0x00, 0x00, 0x00, 0xFF, 0x10}

	encoded := Encode(raw)
	decoded, err := Decode(encoded)

	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeDataURI(t *testing.T) {
	raw := []byte("glTF-binary-payload")
	ref := "data:model/gltf-binary;base64," + Encode(raw)

	decoded, err := Decode(ref)

	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeRejectsEmpty(t *testing.T) {
	_, err := Decode("")
	assert.ErrorIs(t, err, ErrEmptyAsset)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("pas-du-base64-!!!")
	assert.Error(t, err)
}

func TestDecodeRejectsDataURIWithoutBase64(t *testing.T) {
	_, err := Decode("data:model/gltf-binary,raw-payload")
	assert.Error(t, err)
}

func TestExtensionForContentType(t *testing.T) {
	assert.Equal(t, ".glb", ExtensionForContentType(ContentTypeGLB))
	assert.Equal(t, ".gltf", ExtensionForContentType("model/gltf+json"))
	assert.Equal(t, ".glb", ExtensionForContentType("application/octet-stream"))
}
