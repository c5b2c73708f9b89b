// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Bootstrap failure classes. All of them are fatal, none are retried:
// re-issuing the same creation request is deterministic and would fail
// the same way.
var (
	// ErrLoaderUnavailable means the driver entry points could not
	// be resolved at process start.
	ErrLoaderUnavailable = errors.New("vulkan loader entry points unavailable")

	// ErrLayerUnavailable means validation was requested but the
	// validation layer is not in the driver's enumerated layer list.
	// It is reported before any driver creation call is made.
	ErrLayerUnavailable = errors.New("instance layer unavailable")

	// ErrUnsupportedCapability means a capability the platform
	// mandates could not be negotiated with the driver.
	ErrUnsupportedCapability = errors.New("instance capability unsupported")
)

// DriverError is a request the driver rejected. The native result code
// is kept verbatim for diagnosis.
type DriverError struct {
	Op     string
	Result vk.Result
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, vk.Error(e.Result))
}
