//go:build windows

package osinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/grob/strategy"
	"github.com/joshuapare/grobkit/grob/wide"
)

// Name formats accepted by UserName.
const (
	UserSamCompatible = windows.NameSamCompatible
	UserDisplay       = windows.NameDisplay
	UserPrincipal     = windows.NameUserPrincipal
)

// Name formats accepted by ComputerName.
const (
	ComputerDNSHostname               = windows.ComputerNameDnsHostname
	ComputerPhysicalDNSFullyQualified = windows.ComputerNamePhysicalDnsFullyQualified
)

// Adapter describes one network adapter.
type Adapter struct {
	Index        uint32
	Name         string
	FriendlyName string
	Description  string
	MTU          uint32
	HardwareAddr []byte
}

// UserName returns the name of the calling user in the given format
// (UserSamCompatible, UserDisplay or UserPrincipal).
//
// GetUserNameEx fails with ERROR_MORE_DATA and writes the size it needs.
func UserName(format uint32, opts *Options) (string, error) {
	name, err := wide.String(guard(opts, func(arg *grob.Argument[uint16]) grob.Result {
		return grob.ErrorCode(windows.GetUserNameEx(format, arg.Pointer(), arg.SizePtr()))
	}), opts.grob())
	if err != nil {
		return "", fmt.Errorf("failed to get user name: %w", err)
	}
	return name, nil
}

// ComputerName returns the name of the local computer in the given format.
func ComputerName(format uint32, opts *Options) (string, error) {
	name, err := wide.String(guard(opts, func(arg *grob.Argument[uint16]) grob.Result {
		return grob.ErrorCode(windows.GetComputerNameEx(format, arg.Pointer(), arg.SizePtr()))
	}), opts.grob())
	if err != nil {
		return "", fmt.Errorf("failed to get computer name: %w", err)
	}
	return name, nil
}

// ModuleFileName returns the path of a loaded module, or of the executable
// when module is empty.
//
// GetModuleFileName returns the number of characters it stored and
// truncates silently on older systems, so a full buffer is treated as
// truncated.
func ModuleFileName(module string, opts *Options) (string, error) {
	var h windows.Handle
	if module != "" {
		name, err := wide.Encode(module)
		if err != nil {
			return "", fmt.Errorf("invalid module name %q: %w", module, err)
		}
		if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, &name[0], &h); err != nil {
			return "", fmt.Errorf("failed to find module %s: %w", module, err)
		}
	}
	path, err := wide.Path(guard(opts, func(arg *grob.Argument[uint16]) grob.Result {
		n, err := windows.GetModuleFileName(h, arg.Pointer(), arg.Size())
		if err != nil {
			return grob.StoredSize(0, err)
		}
		if n == arg.Size() {
			return grob.StoredSizeResult{Stored: n, Status: windows.ERROR_INSUFFICIENT_BUFFER}
		}
		return grob.StoredSize(n, nil)
	}), opts.grob())
	if err != nil {
		return "", fmt.Errorf("failed to get module file name: %w", err)
	}
	return path, nil
}

// CurrentDirectory returns the current directory.
//
// GetCurrentDirectory returns the size it needs, terminator included, when
// the buffer is too small, and the length it stored otherwise.
func CurrentDirectory(opts *Options) (string, error) {
	dir, err := wide.Path(guard(opts, func(arg *grob.Argument[uint16]) grob.Result {
		size := arg.Size()
		n, err := windows.GetCurrentDirectory(size, arg.Pointer())
		if err != nil {
			return grob.ErrorCode(err)
		}
		arg.SetNeededSize(n)
		if n > size {
			return grob.ErrorCodeResult{Code: windows.ERROR_INSUFFICIENT_BUFFER}
		}
		return grob.ErrorCode(nil)
	}), opts.grob())
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return dir, nil
}

// Getwd returns the current directory.
func Getwd(opts *Options) (string, error) {
	return CurrentDirectory(opts)
}

// AdapterNames lists the network adapters.
//
// GetAdaptersAddresses fails with ERROR_BUFFER_OVERFLOW and writes the size
// it needs, and with ERROR_NO_DATA when there are no adapters.
func AdapterNames(opts *Options) ([]Adapter, error) {
	g := grob.New[byte](
		grob.NewFixedSize(grob.DefaultLargeCapacity),
		strategy.QuarterKibi{Alignment: uint32(grob.Alignment)},
		opts.grob(),
	)
	adapters, err := grob.Run(g, guard(opts, func(arg *grob.Argument[byte]) grob.Result {
		head := (*windows.IpAdapterAddresses)(unsafe.Pointer(arg.Pointer()))
		return grob.ErrorCode(windows.GetAdaptersAddresses(
			windows.AF_UNSPEC, windows.GAA_FLAG_INCLUDE_PREFIX, 0, head, arg.SizePtr()))
	}), func(f *grob.FrozenBuffer[byte]) ([]Adapter, error) {
		var adapters []Adapter
		for a := grob.Struct[windows.IpAdapterAddresses](f); a != nil; a = a.Next {
			n := min(int(a.PhysicalAddressLength), len(a.PhysicalAddress))
			adapters = append(adapters, Adapter{
				Index:        a.IfIndex,
				Name:         windows.BytePtrToString(a.AdapterName),
				FriendlyName: windows.UTF16PtrToString(a.FriendlyName),
				Description:  windows.UTF16PtrToString(a.Description),
				MTU:          a.Mtu,
				HardwareAddr: append([]byte(nil), a.PhysicalAddress[:n]...),
			})
		}
		return adapters, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list adapters: %w", err)
	}
	return adapters, nil
}
