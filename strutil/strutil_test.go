package strutil

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetIn(t *testing.T) {
	doc := decode(t, `{
		"servers": [
			{"host": "a.example", "port": 80},
			{"host": "b.example", "port": 443}
		],
		"regions": {
			"us": {"zone": "east"},
			"eu": {"zone": "central"}
		}
	}`)

	tests := []struct {
		name string
		path string
		want []any
	}{
		{"list wildcard", "servers.*.host", []any{"a.example", "b.example"}},
		{"list index", "servers.1.port", []any{443.0}},
		{"map wildcard sorted", "regions.*.zone", []any{"central", "east"}},
		{"missing key", "servers.*.missing", nil},
		{"missing branch", "nope.host", nil},
		{"index out of range", "servers.9.host", nil},
		{"empty path", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetIn(doc, tt.path); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetIn(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		sep  string
		args []any
		want string
	}{
		{"strings", " ", []any{"a", "b"}, "a b"},
		{"drops nil", ", ", []any{"a", nil, "b", nil}, "a, b"},
		{"mixed types", "-", []any{"v", 2, 1.5}, "v-2-1.5"},
		{"all nil", " ", []any{nil, nil}, ""},
		{"empty", " ", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.sep, tt.args...); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"templateImage", "template_image"},
		{"title", "title"},
		{"ID", "id"},
		{"userID", "user_id"},
		{"param1", "param1"},
		{"HTTPServer", "httpserver"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CamelToSnake(tt.in); got != tt.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
