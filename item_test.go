package goxbar

import (
	"errors"
	"reflect"
	"testing"
)

func renderLines(t *testing.T, r Renderable, cfg *Config, depth int) []string {
	t.Helper()
	lines, err := r.Render(cfg, depth)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return lines
}

func TestMenuItemRender(t *testing.T) {
	tests := []struct {
		name string
		item *MenuItem
		want []string
	}{
		{
			name: "bare title",
			item: &MenuItem{Title: "Status"},
			want: []string{"Status"},
		},
		{
			name: "text attribute",
			item: &MenuItem{Title: "A", Href: "http://x"},
			want: []string{"A | href=http://x"},
		},
		{
			name: "text attribute with spaces is quoted",
			item: &MenuItem{Title: "F", Font: "Ubuntu Mono"},
			want: []string{"F | font='Ubuntu Mono'"},
		},
		{
			name: "flag true",
			item: &MenuItem{Title: "B", Disabled: Flag(true)},
			want: []string{"B | disabled=True"},
		},
		{
			name: "explicit false is serialized",
			item: &MenuItem{Title: "B", Trim: Flag(false)},
			want: []string{"B | trim=False"},
		},
		{
			name: "unset flags and zero numbers are omitted",
			item: &MenuItem{Title: "C", Size: 0, Length: 0},
			want: []string{"C"},
		},
		{
			name: "number attribute",
			item: &MenuItem{Title: "C", Size: 12, Length: 10},
			want: []string{"C | size=12 | length=10"},
		},
		{
			name: "attributes keep declaration order",
			item: &MenuItem{Title: "D", Disabled: Flag(true), Key: "shift+k", Color: "red"},
			want: []string{"D | key=shift+k | color=red | disabled=True"},
		},
		{
			name: "shell command is tokenized and numbered",
			item: &MenuItem{Title: "Run", Shell: "echo 'a b' c"},
			want: []string{"Run | shell=echo | param1='a b' | param2=c"},
		},
		{
			name: "explicit params continue shell numbering",
			item: &MenuItem{Title: "Run", Shell: "echo hi", Params: []string{"there"}},
			want: []string{"Run | shell=echo | param1=hi | param2=there"},
		},
		{
			name: "alternate title renders a second line",
			item: &MenuItem{Title: "Show", TitleAlternate: "Show all", Href: "http://x"},
			want: []string{"Show | href=http://x", "Show all | href=http://x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderLines(t, tt.item, NewConfig(), 0)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuItemDepthPrefix(t *testing.T) {
	parent := (&MenuItem{Title: "top"}).WithSubmenu(
		(&MenuItem{Title: "child"}).WithSubmenu(
			&MenuItem{Title: "grandchild"},
		),
		Divider(),
	)

	want := []string{
		"top",
		"-- child",
		"---- grandchild",
		"-----", // divider dashes run together with the indent marker
	}
	got := renderLines(t, parent, NewConfig(), 0)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMenuItemSiblingsAfterSubmenu(t *testing.T) {
	item := (&MenuItem{Title: "main"}).
		WithSubmenu(&MenuItem{Title: "sub"}).
		WithSiblings(&MenuItem{Title: "peer"})

	want := []string{"main", "-- sub", "peer"}
	got := renderLines(t, item, NewConfig(), 0)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMenuItemOnlyIf(t *testing.T) {
	tests := []struct {
		name   string
		onlyIf any
		lines  int
	}{
		{"nil gate renders", nil, 1},
		{"true renders", true, 1},
		{"false suppresses", false, 0},
		{"empty string suppresses", "", 0},
		{"non-empty string renders", "up", 1},
		{"empty slice suppresses", []string{}, 0},
		{"populated slice renders", []string{"a"}, 1},
		{"zero int suppresses", 0, 0},
		{"non-zero float renders", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := (&MenuItem{Title: "gated", OnlyIf: tt.onlyIf}).
				WithSubmenu(&MenuItem{Title: "sub"}).
				WithSiblings(&MenuItem{Title: "peer"})
			got := renderLines(t, item, NewConfig(), 0)

			switch tt.lines {
			case 0:
				if len(got) != 0 {
					t.Errorf("Render() = %q, want no output", got)
				}
			default:
				// gate open renders the item plus its subtree and peers
				want := []string{"gated", "-- sub", "peer"}
				if !reflect.DeepEqual(got, want) {
					t.Errorf("Render() = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestMenuItemOnlyIfUnsupported(t *testing.T) {
	item := &MenuItem{Title: "bad", OnlyIf: struct{ x int }{}}
	if _, err := item.Render(NewConfig(), 0); !errors.Is(err, ErrNotTruthy) {
		t.Errorf("Render() error = %v, want ErrNotTruthy", err)
	}
}

func TestMenuItemMonospaceResolution(t *testing.T) {
	cfg := NewConfig()
	cfg.MonoFont = "Menlo"

	t.Run("monospace font alias", func(t *testing.T) {
		item := &MenuItem{Title: "M", Font: "monospace"}
		got := renderLines(t, item, cfg, 0)
		want := []string{"M | font=Menlo"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Render() = %q, want %q", got, want)
		}
		if item.Font != "Menlo" {
			t.Errorf("Font = %q, want resolution persisted on the item", item.Font)
		}
	})

	t.Run("monospace shortcut flag", func(t *testing.T) {
		item := &MenuItem{Title: "M", Monospace: true}
		got := renderLines(t, item, cfg, 0)
		want := []string{"M | font=Menlo"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("render is idempotent", func(t *testing.T) {
		item := &MenuItem{Title: "M", Monospace: true}
		first := renderLines(t, item, cfg, 0)
		second := renderLines(t, item, cfg, 0)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("second Render() = %q, want %q", second, first)
		}
	})
}

func TestMenuItemWithAlternate(t *testing.T) {
	alt := &MenuItem{Title: "Copy"}
	item := (&MenuItem{Title: "Open"}).WithAlternate(alt)

	if alt.Alternate == nil || !*alt.Alternate {
		t.Fatal("WithAlternate should force the alternate flag")
	}
	want := []string{"Open", "Copy | alternate=True"}
	got := renderLines(t, item, NewConfig(), 0)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMenuItemBuildersSkipNil(t *testing.T) {
	item := (&MenuItem{Title: "x"}).WithSubmenu(nil, &MenuItem{Title: "sub"}, nil)
	got := renderLines(t, item, NewConfig(), 0)
	want := []string{"x", "-- sub"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestIsDivider(t *testing.T) {
	if !(&MenuItem{Title: "---"}).IsDivider() {
		t.Error(`IsDivider() = false for "---"`)
	}
	if (&MenuItem{Title: "plain"}).IsDivider() {
		t.Error(`IsDivider() = true for "plain"`)
	}
	if !Divider().IsDivider() {
		t.Error("Divider() should be a divider")
	}
}
