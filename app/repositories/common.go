package repositories

import (
	"encoding/json"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Key prefixes for the document and index keyspaces.
	BlogKeyPrefix = "blog:"
	SlugKeyPrefix = "slug:"

	// IDPrefix is prepended to generated post ids.
	IDPrefix = "post"
)

// NewID creates a prefixed unique post id using NanoID
// (e.g. "post-V1StGXR8_Z5jdHi6B-myT").
func NewID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return IDPrefix + "-" + id, nil
}

// ValidID reports whether id has the shape of a generated post id.
func ValidID(id string) bool {
	return len(id) > len(IDPrefix)+1 && strings.HasPrefix(id, IDPrefix+"-")
}

func blogKey(id string) []byte {
	return []byte(BlogKeyPrefix + id)
}

func slugKey(slug string) []byte {
	return []byte(SlugKeyPrefix + slug)
}

// marshalEntity marshals an entity to JSON.
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity.
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
