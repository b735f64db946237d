package mint

import "github.com/pkg/errors"

// Named is implemented by monitors, or anything else selectable by name.
type Named interface {
	Name() string
}

// MatchMonitor returns the monitor whose name equals name exactly. When
// several monitors share the name, the last one in enumeration order wins.
// It returns ErrUnknownMonitor if nothing matches.
func MatchMonitor[M Named](monitors []M, name string) (M, error) {
	var (
		found M
		ok    bool
	)
	for _, m := range monitors {
		if m.Name() == name {
			found, ok = m, true
		}
	}
	if !ok {
		return found, errors.Wrapf(ErrUnknownMonitor, "%q", name)
	}
	return found, nil
}
