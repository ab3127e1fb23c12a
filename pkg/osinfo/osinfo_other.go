//go:build !linux && !darwin && !windows

package osinfo

// Getwd returns ErrUnsupported.
func Getwd(*Options) (string, error) {
	return "", ErrUnsupported
}
