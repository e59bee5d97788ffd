package models

import (
	"encoding/json"
	"fmt"
)

// Skill is immutable reference data fetched from the backend.
type Skill struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// skillObject mirrors the canonical wire shape without inheriting
// Skill's UnmarshalJSON.
type skillObject struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON normalizes the two shapes the backend emits for skills:
// the canonical {id,name} object and a bare name string (older endpoints).
// A bare string is coerced with ID == Name so downstream code never
// branches on shape.
func (s *Skill) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty skill")
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		s.ID = ID(name)
		s.Name = name
		return nil
	}
	var obj skillObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("malformed skill: %w", err)
	}
	s.ID = obj.ID
	s.Name = obj.Name
	return nil
}
