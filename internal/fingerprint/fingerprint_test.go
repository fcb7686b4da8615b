package fingerprint

import (
	"strings"
	"testing"
)

func TestComputeIsDeterministic(t *testing.T) {
	d := HashSecret([]byte("sk_live_51NzKDwH3JxMvRtYbUcE8q"))
	a := Compute("payments/stripe-live-key", "a/config.py", d)
	b := Compute("payments/stripe-live-key", "a/config.py", d)
	if a != b {
		t.Fatalf("fingerprint not deterministic: %s vs %s", a, b)
	}
}

func TestComputeShape(t *testing.T) {
	fp := Compute("test/p", "f.txt", HashSecret([]byte("x")))
	if !strings.HasPrefix(fp, "sha256:") {
		t.Fatalf("missing prefix: %s", fp)
	}
	if len(fp) != len("sha256:")+64 {
		t.Fatalf("wrong length %d", len(fp))
	}
	if fp != strings.ToLower(fp) {
		t.Fatal("hex must be lowercase")
	}
}

func TestComputeDistinguishesEachInput(t *testing.T) {
	d1 := HashSecret([]byte("secret-a"))
	d2 := HashSecret([]byte("secret-b"))
	base := Compute("p/one", "a/config.py", d1)

	if Compute("p/two", "a/config.py", d1) == base {
		t.Fatal("pattern id not mixed in")
	}
	if Compute("p/one", "b/config.py", d1) == base {
		t.Fatal("path not mixed in")
	}
	if Compute("p/one", "a/config.py", d2) == base {
		t.Fatal("secret not mixed in")
	}
}

func TestComputeNoPrefixAmbiguity(t *testing.T) {
	d := HashSecret([]byte("s"))
	// "ab"+"c" vs "a"+"bc" must not collide across the separator
	if Compute("ab", "c", d) == Compute("a", "bc", d) {
		t.Fatal("separator does not prevent prefix ambiguity")
	}
}

func TestSecretHashHex(t *testing.T) {
	h := SecretHashHex(HashSecret([]byte("test-secret")))
	if !strings.HasPrefix(h, "sha256:") || len(h) != 71 {
		t.Fatalf("bad secret hash %q", h)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path, root, want string
	}{
		{"./src/config.py", "", "src/config.py"},
		{"src\\config.py", "", "src/config.py"},
		{"/repo/src/config.py", "/repo", "src/config.py"},
		{"/elsewhere/x.py", "/repo", "/elsewhere/x.py"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.path, tt.root); got != tt.want {
			t.Fatalf("NormalizePath(%q, %q) = %q, want %q", tt.path, tt.root, got, tt.want)
		}
	}
}
