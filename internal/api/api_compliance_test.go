package api_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestAPICompliance checks that remote access stays behind the api client:
// no package outside internal/api builds HTTP requests itself.
func TestAPICompliance(t *testing.T) {
	forbidden := []string{
		"http.NewRequest",
		"http.Get(",
		"http.Post(",
		"http.DefaultClient",
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}

	// Running from internal/api
	internalDir := filepath.Join(cwd, "..")
	if stat, err := os.Stat(internalDir); err != nil || !stat.IsDir() {
		t.Logf("Could not locate internal directory from %s, skipping scan", cwd)
		return
	}
	apiDir := filepath.Join(internalDir, "api")

	err = filepath.Walk(internalDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !strings.HasSuffix(info.Name(), ".go") || strings.HasSuffix(info.Name(), "_test.go") {
			return nil
		}

		if strings.HasPrefix(path, apiDir+string(filepath.Separator)) {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		lineNumber := 0
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lineNumber++
			line := scanner.Text()

			for _, f := range forbidden {
				if strings.Contains(line, f) {
					t.Errorf("Direct HTTP access found in %s:%d: %s", path, lineNumber, strings.TrimSpace(line))
				}
			}
		}

		return scanner.Err()
	})

	if err != nil {
		t.Fatalf("Failed to walk directories: %v", err)
	}
}
