package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// CaptureOutput returns everything fn writes to os.Stdout.
// The formatter writes to os.Stdout directly, so a cobra out buffer is not enough.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()
	_ = w.Close()

	return <-done
}

// ExecuteCommand runs cmd with args and returns its stdout.
// Usage and cobra's own error printing are silenced; commands report
// failures through their formatter.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetErr(io.Discard)

	var err error
	out := CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return out, err
}

// ParseJSON decodes a --json envelope
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := sonic.ConfigStd.UnmarshalFromString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
