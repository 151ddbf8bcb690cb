package dto

import "encoding/json"

// unmarshalIDOrObject accepts either a bare string ID or an object with an
// "_id"/"id" field. Admin clients send both shapes depending on whether the
// reference was populated.
func unmarshalIDOrObject(data []byte, id *string) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = s
		return nil
	}

	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.MongoID != "" {
		*id = obj.MongoID
	} else {
		*id = obj.ID
	}
	return nil
}
