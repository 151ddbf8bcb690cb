package usecase

import "encoding/json"

// Cached entities are stored as plain JSON blobs.

func marshalCached(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalCached(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
