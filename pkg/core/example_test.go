package core_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spikermint/vet/pkg/core"
)

// Example demonstrates a minimal embedded scan.
func Example() {
	dir, _ := os.MkdirTemp("", "vet-example")
	defer os.RemoveAll(dir)
	_ = os.WriteFile(filepath.Join(dir, "config.txt"),
		[]byte(`key = "sk_live_51NzKDwH3JxMvRtYbUcE8q"`), 0o644)

	res, err := core.Scan(context.Background(), []string{dir}, core.DefaultOptions())
	if err != nil {
		fmt.Println("scan failed:", err)
		return
	}
	for _, f := range res.Findings {
		fmt.Println(f.PatternID, f.SecretPreview)
	}
	// Output:
	// payments/stripe-live-key sk…8q
}
