package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestComputeFileHash(t *testing.T) {
	// Create a temporary file for testing
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	content := []byte("body { color: red; }")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	// Test with existing file
	hash := computeFileHash(tmpFile)
	if hash == "" {
		t.Error("expected a hash, got empty string")
	}
	if len(hash) != 8 {
		t.Errorf("expected hash length 8, got %d", len(hash))
	}

	// Test with non-existent file
	hash = computeFileHash("non_existent_file.css")
	if hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestGetVersionsDefault(t *testing.T) {
	ctx := context.Background()

	// Either a hash or "1", depending on whether InitAssetVersions already ran
	if v := GetCSSVersion(ctx); v == "" {
		t.Error("GetCSSVersion returned empty string")
	}
	if v := GetAppJSVersion(ctx); v == "" {
		t.Error("GetAppJSVersion returned empty string")
	}
}

func TestInitAssetVersions(t *testing.T) {
	// assetVersionsOnce means this can only run once per process
	staticDir := t.TempDir()
	os.MkdirAll(filepath.Join(staticDir, "css"), 0755)
	os.MkdirAll(filepath.Join(staticDir, "js"), 0755)
	os.WriteFile(filepath.Join(staticDir, "css", "site.css"), []byte("css"), 0644)
	os.WriteFile(filepath.Join(staticDir, "js", "backtest.js"), []byte("js"), 0644)

	InitAssetVersions(staticDir)

	ctx := context.Background()
	if GetCSSVersion(ctx) == "1" {
		t.Error("expected computed CSS version, got default '1'")
	}
	if GetAppJSVersion(ctx) == "1" {
		t.Error("expected computed backtest JS version, got default '1'")
	}
}
