// Package dto holds request and response shapes that do not map 1:1 to
// domain types.
package dto

import (
	"encoding/json"
	"errors"
	"strings"
)

var errBadSkillEntry = errors.New("skill entry must be a string or an object with a name")

// SkillEntry accepts both wire shapes clients send for a skill: a bare
// string ("react") or an object ({"name": "react"}).
type SkillEntry struct {
	Name string
}

func (e *SkillEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errBadSkillEntry
	}
	e.Name = obj.Name
	return nil
}

func (e SkillEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Name)
}

// SkillNames flattens entries to trimmed names, dropping blanks.
func SkillNames(entries []SkillEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
