// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/argon/core"
)

func TestDriverErrorPreservesResult(t *testing.T) {
	err := &core.DriverError{Op: "vk.CreateInstance()", Result: vk.ErrorExtensionNotPresent}

	if err.Result != vk.ErrorExtensionNotPresent {
		t.Errorf("native result not preserved: %d", err.Result)
	}
	if !strings.Contains(err.Error(), "vk.CreateInstance()") {
		t.Errorf("operation missing from message: %q", err.Error())
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %s", core.ErrLayerUnavailable, core.ValidationLayer)
	if !errors.Is(wrapped, core.ErrLayerUnavailable) {
		t.Error("wrapped layer error lost its class")
	}
	if errors.Is(wrapped, core.ErrUnsupportedCapability) {
		t.Error("error classes must stay distinct")
	}
}
