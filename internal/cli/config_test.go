package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/geom"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
[margin]
top = 5
bottom = 10
left = 12
right = 15

[labels]
x = 40
y = 35

[caption]
text = "Graph Title"
points = 40.0
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset error: %v", err)
	}

	l, err := p.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	additional := l.AdditionalSize()
	wantW := 12 + 15 + 35
	if additional.W != wantW {
		t.Errorf("additional width = %d, want %d", additional.W, wantW)
	}
	wantHWithoutTitle := 5 + 10 + 40
	if got := additional.H - l.TitleHeight(); got != wantHWithoutTitle {
		t.Errorf("additional height minus title = %d, want %d", got, wantHWithoutTitle)
	}
	if l.TitleHeight() == 0 {
		t.Error("caption did not reserve a title band")
	}
}

func TestLoadPresetWithoutCaption(t *testing.T) {
	path := writePreset(t, `
[margin]
top = 4
bottom = 4
left = 4
right = 4
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset error: %v", err)
	}
	l, err := p.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if l.TitleHeight() != 0 {
		t.Errorf("TitleHeight() = %d, want 0 without caption", l.TitleHeight())
	}
}

func TestLoadPresetRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown key",
			content: `
[margin]
top = 4
oops = 1
`,
		},
		{
			name: "negative margin",
			content: `
[margin]
top = -4
`,
		},
		{
			name: "negative points",
			content: `
[caption]
text = "T"
points = -12.0
`,
		},
		{
			name:    "malformed toml",
			content: `[margin`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPreset(writePreset(t, tt.content))
			if err == nil {
				t.Fatal("LoadPreset accepted an invalid preset")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestDefaultPresetBuilds(t *testing.T) {
	l, err := DefaultPreset().Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := geom.Size{W: 4 + 4 + 40, H: 4 + 4 + 40}
	if got := l.AdditionalSize(); got != want {
		t.Errorf("AdditionalSize() = %v, want %v", got, want)
	}
}
