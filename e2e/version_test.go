package e2e

import (
	"strings"
	"testing"
)

func TestVersionFlagOutputsInjectedVersion(t *testing.T) {
	t.Parallel()

	injectedVersion := "e2e-smoke"
	repoRoot, binaryPath := buildCLIBinary(t, "-X github.com/getlawrence/stenum/cmd.Version="+injectedVersion)

	for _, args := range [][]string{{"--version"}, {"version"}} {
		stdout, stderr, err := runCLI(t, binaryPath, repoRoot, "", args...)
		if err != nil {
			t.Fatalf("running %v failed: %v\n%s", args, err, stderr)
		}
		if !strings.Contains(stdout, injectedVersion) {
			t.Fatalf("expected %v output to contain %q, got: %q", args, injectedVersion, stdout)
		}
	}
}
