package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"ict_forex_app_go/logger"
)

var (
	cssVersion        string
	appJSVersion      string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		log := logger.WithComponent("assets")

		cssVersion = computeFileHash(filepath.Join(staticDir, "css", "site.css"))
		if cssVersion == "" {
			cssVersion = "1"
		}
		log.Infof("CSS version initialized: %s", cssVersion)

		appJSVersion = computeFileHash(filepath.Join(staticDir, "js", "backtest.js"))
		if appJSVersion == "" {
			appJSVersion = "1"
		}
		log.Infof("Backtest JS version initialized: %s", appJSVersion)
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		logger.WithComponent("assets").Warnf("Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.WithComponent("assets").Warnf("Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetCSSVersion returns the CSS file version hash for cache busting
// Note: ctx parameter is for API consistency with other middleware helpers,
// but the version is computed once at startup and is global
func GetCSSVersion(ctx context.Context) string {
	if cssVersion == "" {
		return "1"
	}
	return cssVersion
}

// GetAppJSVersion returns the backtest.js file version hash for cache busting
func GetAppJSVersion(ctx context.Context) string {
	if appJSVersion == "" {
		return "1"
	}
	return appJSVersion
}
