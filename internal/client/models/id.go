package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an entity identifier as the backend sends it. Some endpoints return
// ids as JSON numbers, others as strings; ID accepts both and always holds
// the canonical decimal string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Int converts the id to an integer, for endpoints addressed by numeric path
// segments. Returns an error for non-numeric ids.
func (id ID) Int() (int, error) {
	return strconv.Atoi(string(id))
}
