package postgres

import "encoding/json"

// Multilingual fields and nested sub-documents are stored as JSONB columns.
// These helpers keep the row converters terse; a nil Go value round-trips as
// SQL NULL rather than the string "null".

func toJSONB(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	return data, nil
}

func fromJSONB(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
