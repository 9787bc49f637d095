// Package files implements small file-path helpers shared by the tokenizer providers.
package files

import (
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Exists returns true if file or directory exists.
func Exists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// ExpandTilde replaces a leading "~" in filePath by the current user's home
// directory. Paths not starting with "~" are returned unchanged.
func ExpandTilde(filePath string) (string, error) {
	if filePath != "~" && !strings.HasPrefix(filePath, "~/") {
		return filePath, nil
	}
	usr, err := user.Current()
	if err != nil {
		return filePath, errors.Wrapf(err, "failed to lookup home directory to expand %q", filePath)
	}
	return path.Join(usr.HomeDir, filePath[1:]), nil
}
