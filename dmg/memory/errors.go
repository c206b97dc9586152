package memory

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedROMSize = errors.New("unsupported ROM size code")
	ErrUnsupportedRAMSize = errors.New("unsupported RAM size code")
)

// LoadErrorKind classifies why a cartridge image could not be loaded.
type LoadErrorKind uint8

const (
	// IOError covers missing files and images shorter than their header declares.
	IOError LoadErrorKind = iota
	// UnsupportedSize is returned for ROM or RAM size codes with no bank mapping.
	UnsupportedSize
)

func (k LoadErrorKind) String() string {
	switch k {
	case IOError:
		return "io error"
	case UnsupportedSize:
		return "unsupported size"
	}
	return "unknown"
}

// LoadError is returned by LoadCartridge and NewCartridge.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	// Code is the offending header size code for UnsupportedSize.
	Code byte
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cartridge load failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("cartridge load failed for %q (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
