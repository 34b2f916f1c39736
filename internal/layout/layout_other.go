//go:build !darwin && !windows && !linux

package layout

func detectLayout() (Info, error) {
	return Info{}, ErrNotAvailable
}
