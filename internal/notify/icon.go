package notify

import (
	"fmt"
	"os"
	"path/filepath"

	mnerrors "github.com/tessro/mocnotify/internal/errors"
)

// executable is swapped out in tests.
var executable = os.Executable

// ResolveIcon returns an absolute icon path. Relative names are taken from
// the directory holding the running binary. The file itself is not checked.
func ResolveIcon(icon string) (string, error) {
	if icon == "" || filepath.IsAbs(icon) {
		return icon, nil
	}

	exe, err := executable()
	if err != nil {
		return "", mnerrors.WithSuggestion(
			fmt.Errorf("%w %q: %w", mnerrors.ErrIconUnresolved, icon, err),
			"Set notify.icon to an absolute path, e.g. /usr/share/pixmaps/"+icon,
		)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), icon), nil
}
