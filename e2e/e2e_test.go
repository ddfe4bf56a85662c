package e2e

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenFromStdin(t *testing.T) {
	t.Parallel()
	_, binaryPath := buildCLIBinary(t)

	stdout, stderr, err := runCLI(t, binaryPath, t.TempDir(), "enum CowboyType { Good, Bad, Ugly }", "gen", "--comparable")
	if err != nil {
		t.Fatalf("gen failed: %v\n%s", err, stderr)
	}

	for _, want := range []string{
		"using System;\n",
		"namespace Project1\n",
		"internal class CowboyType : IComparable<CowboyType>\n",
		"public static readonly CowboyType Good = new(nameof(Good), \"G\", 0);",
		"public static bool operator <(CowboyType lhs, CowboyType rhs) => lhs.CompareTo(rhs) < 0;",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if strings.TrimSpace(stderr) != "" {
		t.Errorf("expected nothing on stderr, got %q", stderr)
	}
}

func TestGenExamplesWithConfig(t *testing.T) {
	t.Parallel()
	repoRoot, binaryPath := buildCLIBinary(t)

	work := t.TempDir()
	if err := copyDir(filepath.Join(repoRoot, "examples"), work); err != nil {
		t.Fatalf("failed to copy examples: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	args := []string{"gen", "csharp/CowboyType.cs", "csharp/Permission.cs", "vb/Suit.vb"}
	if err := runAndStreamOutput(t, ctx, work, binaryPath, args...); err != nil {
		t.Fatalf("gen failed: %v", err)
	}

	expect := map[string][]string{
		"CowboyType.cs": {"namespace Western.Characters", "public class CowboyType : IComparable<CowboyType>", "?? throw new ArgumentOutOfRangeException"},
		"Permission.cs": {"namespace Western.Security", "public static readonly Permission All = new Permission(nameof(All), \"A\", 7);", "explicit operator byte(Permission value)"},
		"Suit.vb":       {"Namespace Cards", "Public Class Suit", "Implements IComparable(Of Suit)", "New Suit(NameOf(Clubs), \"C\", 16)"},
	}
	for name, wants := range expect {
		data, err := os.ReadFile(filepath.Join(work, "Generated", name))
		if err != nil {
			t.Fatalf("expected generated %s: %v", name, err)
		}
		for _, want := range wants {
			if !strings.Contains(string(data), want) {
				t.Errorf("%s missing %q", name, want)
			}
		}
	}
}

func TestGenReportsCompilationErrors(t *testing.T) {
	t.Parallel()
	_, binaryPath := buildCLIBinary(t)

	_, stderr, err := runCLI(t, binaryPath, t.TempDir(), "enum Broken { A = }", "gen")
	if err == nil {
		t.Fatalf("expected gen to fail")
	}
	if !strings.Contains(stderr, "compilation failed") {
		t.Fatalf("expected compilation error on stderr, got %q", stderr)
	}
}

func TestVersionsCommand(t *testing.T) {
	t.Parallel()
	_, binaryPath := buildCLIBinary(t)

	stdout, stderr, err := runCLI(t, binaryPath, t.TempDir(), "", "versions", "-o", "yaml")
	if err != nil {
		t.Fatalf("versions failed: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "default:") || !strings.Contains(stdout, "C# 9.0") {
		t.Fatalf("unexpected versions output: %q", stdout)
	}
}
