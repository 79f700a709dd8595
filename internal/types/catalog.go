package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillCategory is one named group of skills from the master catalog.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillsCatalog is the complete, unfiltered set of skills a candidate could
// claim, grouped by category. Category order and skill order follow the
// source document: the catalog decodes from a JSON object and keeps the keys
// in the order they appear, which encoding/json's map type would discard.
type SkillsCatalog struct {
	Categories []SkillCategory
}

// UnmarshalJSON decodes a {"Category": ["Skill", ...], ...} object while
// preserving key order via the token stream.
func (c *SkillsCatalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills catalog: expected JSON object, got %v", tok)
	}

	c.Categories = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills catalog: expected category name, got %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("skills catalog: category %q: %w", name, err)
		}

		c.Categories = append(c.Categories, SkillCategory{Name: name, Skills: skills})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// MarshalJSON encodes the catalog back to a JSON object in category order.
func (c SkillsCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		nameJSON, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		skillsJSON, err := json.Marshal(cat.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(nameJSON)
		buf.WriteByte(':')
		buf.Write(skillsJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Len returns the number of categories in the catalog.
func (c *SkillsCatalog) Len() int {
	return len(c.Categories)
}
