package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Extension is the suffix scripts in a scripts directory carry.
const Extension = ".lua"

// ErrNotFound is returned by Resolve when no script matches.
var ErrNotFound = os.ErrNotExist

// Available lists the script names in dir without their extension, sorted.
func Available(dir string) []string {
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil
	}

	names := lo.FilterMap(files, func(f os.FileInfo, _ int) (string, bool) {
		return util.FileStem(f.Name()), !f.IsDir() && filepath.Ext(f.Name()) == Extension
	})
	sort.Strings(names)
	return names
}

// Resolve maps name to a script file. An existing path is used as is; a bare
// name is looked up in dir with Extension appended when missing.
func Resolve(name, dir string) (string, error) {
	fs := filesystem.API()
	if exists, _ := fs.Exists(name); exists {
		return name, nil
	}

	if strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	file := name
	if filepath.Ext(file) != Extension {
		file += Extension
	}

	path := filepath.Join(dir, file)
	if exists, _ := fs.Exists(path); exists {
		return path, nil
	}

	return "", notFound(name, Available(dir))
}

func notFound(name string, available []string) error {
	stem := strings.TrimSuffix(name, Extension)

	ranks := fuzzy.RankFindFold(stem, available)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return fmt.Errorf("%w: script %s, did you mean %s?", ErrNotFound, name, ranks[0].Target)
	}

	if len(available) > 0 {
		return fmt.Errorf("%w: script %s, available: %s", ErrNotFound, name, strings.Join(available, ", "))
	}

	return fmt.Errorf("%w: script %s", ErrNotFound, name)
}
