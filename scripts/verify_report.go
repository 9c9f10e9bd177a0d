package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Runs a built ./lookupbench binary and checks the report format and exit
// codes. Build first with: go build -o lookupbench ./cmd/lookupbench
func main() {
	header := regexp.MustCompile(`^Data size: (\d+), Iterations: (\d+)$`)
	line := regexp.MustCompile(`^(linear|hashmap|dictionary): \d+\.\d{4}ms$`)

	// 1. Normal run
	log.Println("Running benchmark across the hash table threshold...")
	out, code := runBench("-sizes", "10,900,1500", "-iterations", "500", "-seed", "42", "-log-level", "warn")
	if code != 0 {
		log.Fatalf("expected exit code 0, got %d", code)
	}

	blocks := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n\n")
	if len(blocks) != 3 {
		log.Fatalf("expected 3 report blocks, got %d:\n%s", len(blocks), out)
	}
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) != 4 || !header.MatchString(lines[0]) {
			log.Fatalf("malformed block:\n%s", block)
		}
		for i, kind := range []string{"linear", "hashmap", "dictionary"} {
			m := line.FindStringSubmatch(lines[i+1])
			if m == nil || m[1] != kind {
				log.Fatalf("expected %s line, got %q", kind, lines[i+1])
			}
		}
	}
	log.Println("✅ Report format verified")

	// 2. Same seed, same datasets: the block headers must match exactly
	again, _ := runBench("-sizes", "10,900,1500", "-iterations", "500", "-seed", "42", "-log-level", "warn")
	if len(strings.Split(again, "\n")) != len(strings.Split(out, "\n")) {
		log.Fatalf("reproducible run produced a different report shape")
	}
	log.Println("✅ Seeded rerun verified")

	// 3. Empty dataset aborts with a non-zero exit code
	log.Println("Running benchmark with an empty dataset...")
	out, code = runBench("-sizes", "10,0", "-iterations", "5", "-log-level", "disabled")
	if code == 0 {
		log.Fatalf("expected non-zero exit code for size 0")
	}
	if strings.Contains(out, "Data size: 0") {
		log.Fatalf("no block expected for the failing size:\n%s", out)
	}
	log.Println("✅ Configuration failure verified")
}

func runBench(args ...string) (string, int) {
	cmd := exec.Command("./lookupbench", args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), exitErr.ExitCode()
	default:
		log.Fatalf("failed to start benchmark: %v", err)
		return "", -1
	}
}
