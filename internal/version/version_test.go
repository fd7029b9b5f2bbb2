package version

import (
	"errors"
	"testing"
)

func TestParseFields(t *testing.T) {
	v, err := Parse("1.2.3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 || v.Pre != "" {
		t.Fatalf("unexpected fields: %+v", v)
	}

	v, err = Parse("v1.2.3-beta.1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 || v.Pre != "beta.1" {
		t.Fatalf("unexpected fields: %+v", v)
	}
}

func TestParseCanonicalForm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v1.2", "1.2.0"},
		{"1.2.3-beta.1", "1.2.3-beta.1"},
		{"v0.1.6-rc-2", "0.1.6-rc-2"},
		{"10.20.30", "10.20.30"},
	}

	for _, tc := range cases {
		v, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got := v.String(); got != tc.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"1",
		"v1",
		"1.2.3.4",
		"a.b.c",
		"1.x",
		"1.2.x",
		"1..3",
		"1.2.3beta",
		"-beta",
	}

	for _, in := range cases {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
		var perr ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse(%q): expected ParseError, got %T", in, err)
		}
		if perr.Input != in {
			t.Fatalf("Parse(%q): error carries %q", in, perr.Input)
		}
	}
}

func TestCompareOrdering(t *testing.T) {
	chain := []string{"1.0.0", "1.0.1", "1.1.0", "2.0.0"}
	for i := 0; i < len(chain)-1; i++ {
		a, err := Parse(chain[i])
		if err != nil {
			t.Fatalf("Parse(%q): %v", chain[i], err)
		}
		b, err := Parse(chain[i+1])
		if err != nil {
			t.Fatalf("Parse(%q): %v", chain[i+1], err)
		}
		if !a.Less(b) {
			t.Fatalf("expected %s < %s", a, b)
		}
		if b.Less(a) {
			t.Fatalf("expected %s not < %s", b, a)
		}
	}
}

func TestComparePrerelease(t *testing.T) {
	pre, _ := Parse("1.2.3-beta")
	final, _ := Parse("1.2.3")
	if !pre.Less(final) {
		t.Fatalf("expected %s < %s", pre, final)
	}

	alpha, _ := Parse("1.2.3-alpha")
	beta, _ := Parse("1.2.3-beta")
	if !alpha.Less(beta) {
		t.Fatalf("expected %s < %s", alpha, beta)
	}

	same, _ := Parse("v1.2.3-beta")
	if Compare(beta, same) != 0 {
		t.Fatalf("expected %s == %s", beta, same)
	}
}

func TestCompareNumericNotLexicographic(t *testing.T) {
	small, _ := Parse("1.2.0")
	big, _ := Parse("1.10.0")
	if !small.Less(big) {
		t.Fatalf("expected %s < %s", small, big)
	}
}
