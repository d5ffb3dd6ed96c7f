package goxbar

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemsFromJSON builds menu items from a JSON payload, the typical
// shape of data a plugin pulls from some API and turns into dropdown
// rows. The payload may be a JSON array of objects or newline-delimited
// JSON objects; object keys match the MenuItem field tags (camelCase).
// Absent three-state attributes stay unset and are omitted when the
// items render.
func ItemsFromJSON(data []byte) ([]*MenuItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []*MenuItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("parse item list: %w", err)
		}
		return items, nil
	}

	var items []*MenuItem
	for i, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		item := &MenuItem{}
		if err := json.Unmarshal(line, item); err != nil {
			return nil, fmt.Errorf("parse item on line %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}
