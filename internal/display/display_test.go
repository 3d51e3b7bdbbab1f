package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestExpandTemplate(t *testing.T) {
	data := struct {
		Count     int
		TotalGold int
		Names     []string
	}{
		Count:     2,
		TotalGold: 125,
		Names:     []string{"Sword", "Bread"},
	}

	tests := map[string]struct {
		tmpl   string
		exp    string
		expErr string
	}{
		"plain text": {
			tmpl: "nothing to expand",
			exp:  "nothing to expand",
		},
		"fields": {
			tmpl: "{{ .Count }} items worth {{ .TotalGold }} gold",
			exp:  "2 items worth 125 gold",
		},
		"sprig functions": {
			tmpl: `{{ .Names | join ", " | upper }}`,
			exp:  "SWORD, BREAD",
		},
		"parse error": {
			tmpl:   "{{ .Count ",
			expErr: "parsing template",
		},
		"execute error": {
			tmpl:   "{{ .Missing }}",
			expErr: "executing template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.tmpl, data)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", got, tt.exp)
		})
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("gold ", 30)

	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(strings.TrimRight(line, " ")) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}

	testutil.AssertEqual(t, "short", Wrap("Total: 5"), "Total: 5")
}
