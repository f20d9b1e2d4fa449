// Package where resolves the filesystem locations bii reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/biiclasses/bii/constant"
	"github.com/biiclasses/bii/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "BII_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring BII_CONFIG_PATH first
// and the platform user config directory otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts resolves the directory bii script looks in for bare script names.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// Reports resolves the directory saved self-check reports go to.
func Reports() string {
	return ensureDir(filepath.Join(Config(), "reports"))
}

// History resolves the file recent check runs are recorded in.
func History() string {
	return filepath.Join(Config(), "history.json")
}
