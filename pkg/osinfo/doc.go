// Package osinfo queries the operating system through calls whose output
// size is not known in advance.
//
// Every function negotiates its buffer with grob: it starts from a fixed
// buffer sized for the common case, grows it when the call reports that it
// was too small, and copies the result out before returning. Failures wrap
// the platform code, so callers can test them with errors.Is:
//
//	target, err := osinfo.Readlink("/proc/self/exe", nil)
//	if errors.Is(err, unix.EINVAL) {
//		// not a symlink
//	}
//
// # Platforms
//
// Linux and macOS provide Readlink, Getwd, Getxattr and Listxattr. Windows
// provides UserName, ComputerName, ModuleFileName, CurrentDirectory,
// AdapterNames and Getwd. Getwd exists everywhere and returns
// ErrUnsupported on other systems.
//
// # Attempts
//
// Options.OnAttempt observes every attempt and may end the negotiation, for
// example to cap the number of grows.
package osinfo
