package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ContentTypeGLB est le type MIME des modèles 3D binaires (glTF binaire).
const ContentTypeGLB = "model/gltf-binary"

var ErrEmptyAsset = errors.New("modèle 3D vide")

// Encode transforme un modèle binaire en forme transportable (base64).
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reconstruit le binaire depuis la forme transportable.
// Le front cache les canards en IndexedDB sous forme de data-URI
// ("data:model/gltf-binary;base64,...") — on tolère les deux formes.
func Decode(ref string) ([]byte, error) {
	if ref == "" {
		return nil, ErrEmptyAsset
	}

	if strings.HasPrefix(ref, "data:") {
		idx := strings.Index(ref, "base64,")
		if idx < 0 {
			return nil, errors.New("data-URI sans segment base64")
		}
		ref = ref[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(ref)
	if err != nil {
		return nil, fmt.Errorf("base64 invalide: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyAsset
	}
	return data, nil
}

// ExtensionForContentType donne l'extension de fichier pour la clé objet.
func ExtensionForContentType(contentType string) string {
	switch contentType {
	case ContentTypeGLB:
		return ".glb"
	case "model/gltf+json":
		return ".gltf"
	default:
		return ".glb"
	}
}
