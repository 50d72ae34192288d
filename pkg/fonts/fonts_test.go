package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"

	"github.com/gridshape/chartlayout/pkg/errors"
)

func TestResolveDefaultFamily(t *testing.T) {
	f, err := Resolve(DefaultFamily)
	if err != nil {
		t.Fatalf("Resolve(%q) error: %v", DefaultFamily, err)
	}
	if f == nil {
		t.Fatal("Resolve returned nil font")
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	if _, err := Resolve("Sans-Serif"); err != nil {
		t.Errorf("Resolve(\"Sans-Serif\") error: %v", err)
	}
}

func TestRegister(t *testing.T) {
	if err := Register("test-bold", gobold.TTF); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := Resolve("test-bold"); err != nil {
		t.Errorf("Resolve after Register error: %v", err)
	}
}

func TestRegisterRejectsGarbage(t *testing.T) {
	err := Register("broken", []byte("not a font"))
	if err == nil {
		t.Fatal("Register accepted garbage data")
	}
	if !errors.Is(err, errors.ErrCodeFontParse) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFontParse)
	}
}

func TestResolveUnknownFamily(t *testing.T) {
	_, err := Resolve("chartlayout-no-such-family-xyzzy")
	if err == nil {
		t.Fatal("Resolve succeeded for a nonexistent family")
	}
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFontNotFound)
	}
}

func TestFace(t *testing.T) {
	f, err := Resolve(DefaultFamily)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	face := Face(f, 40)
	if face == nil {
		t.Fatal("Face returned nil")
	}
	m := face.Metrics()
	if m.Height <= 0 {
		t.Errorf("face height = %v, want > 0", m.Height)
	}
}
