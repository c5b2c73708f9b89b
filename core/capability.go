// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"runtime"

	vk "github.com/vulkan-go/vulkan"
)

// Instance capability names the catalog can negotiate.
const (
	// DebugReportExtension carries driver diagnostics to the bridge.
	DebugReportExtension = "VK_EXT_debug_report"

	// ValidationLayer is the standard Khronos validation layer.
	ValidationLayer = "VK_LAYER_KHRONOS_validation"

	// PortabilityEnumerationExtension and its companion are mandated by
	// driver distributions that do not natively implement the full API,
	// MoltenVK being the one that matters here.
	PortabilityEnumerationExtension    = "VK_KHR_portability_enumeration"
	PhysicalDeviceProperties2Extension = "VK_KHR_get_physical_device_properties2"
)

// The portability pair became mandatory with loader 1.3.216. The create
// flag is newer than the generated bindings, value from the registry.
var portabilityMinVersion = vk.MakeVersion(1, 3, 216)

const (
	portabilityOS = "darwin"

	instanceCreateEnumeratePortabilityBit vk.InstanceCreateFlags = 0x00000001
)

// Environment is the state the capability rules are judged against.
// It is resolved once at bootstrap and never changes afterwards.
type Environment struct {
	// OS is the host operating system identity, runtime.GOOS form.
	OS string

	// APIVersion is the instance-level API version the loader reports.
	APIVersion uint32

	// Validation mirrors the resolved validation mode.
	Validation bool
}

// HostEnvironment resolves the Environment for this process against
// the queried driver capabilities.
func HostEnvironment(validation bool, available InstanceCapabilities) Environment {
	return Environment{
		OS:         runtime.GOOS,
		APIVersion: available.APIVersion,
		Validation: validation,
	}
}

// CapabilityRequest is the negotiated set of optional capabilities a
// single instance creation enables. Built once, discarded after the
// creation call.
type CapabilityRequest struct {
	Extensions []string
	Layers     []string
	Flags      vk.InstanceCreateFlags
}

// InstanceCapabilities is what the driver advertises at instance level.
// Enumerated once per bootstrap, then consulted as a cached value.
type InstanceCapabilities struct {
	APIVersion uint32   `json:"apiVersion"`
	Layers     []string `json:"layers"`
	Extensions []string `json:"extensions"`
}

// HasLayer reports whether the driver enumerated the named layer.
func (c InstanceCapabilities) HasLayer(name string) bool {
	for _, l := range c.Layers {
		if l == name {
			return true
		}
	}
	return false
}

// HasExtension reports whether the driver enumerated the named extension.
func (c InstanceCapabilities) HasExtension(name string) bool {
	for _, e := range c.Extensions {
		if e == name {
			return true
		}
	}
	return false
}

// capabilityRule maps one environment condition to the capabilities it
// switches on. Rules append distinct known names, so the request cannot
// hold duplicates by construction.
type capabilityRule struct {
	name       string
	when       func(Environment) bool
	extensions []string
	layers     []string
	flags      vk.InstanceCreateFlags
}

var capabilityRules = []capabilityRule{
	{
		name:       "validation",
		when:       func(e Environment) bool { return e.Validation },
		extensions: []string{DebugReportExtension},
		layers:     []string{ValidationLayer},
	},
	{
		name: "portability",
		when: func(e Environment) bool {
			return e.OS == portabilityOS && e.APIVersion >= portabilityMinVersion
		},
		extensions: []string{
			PhysicalDeviceProperties2Extension,
			PortabilityEnumerationExtension,
		},
		flags: instanceCreateEnumeratePortabilityBit,
	},
}

// NewCapabilityRequest produces the capability set for one instance
// creation: the window-mandated extensions first, then whatever the
// rule table switches on for the environment, in table order. Layers a
// rule needs must be present in the enumerated list, window extensions
// likewise, otherwise negotiation fails before any driver call.
func NewCapabilityRequest(env Environment, windowExtensions []string, available InstanceCapabilities) (CapabilityRequest, error) {
	var req CapabilityRequest
	for _, ext := range windowExtensions {
		if !available.HasExtension(ext) {
			return CapabilityRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedCapability, ext)
		}
		req.Extensions = append(req.Extensions, ext)
	}

	for _, rule := range capabilityRules {
		if !rule.when(env) {
			continue
		}
		for _, layer := range rule.layers {
			if !available.HasLayer(layer) {
				return CapabilityRequest{}, fmt.Errorf("%w: %s", ErrLayerUnavailable, layer)
			}
		}
		req.Extensions = append(req.Extensions, rule.extensions...)
		req.Layers = append(req.Layers, rule.layers...)
		req.Flags |= rule.flags
	}
	return req, nil
}

// APIVersionQuery resolves the instance-level API version the loader
// implements. vkEnumerateInstanceVersion postdates the generated
// bindings, so the default reports 1.0, which is what every loader
// lacking that entry point is defined to be. Hosts built against newer
// bindings can swap the query in before bootstrap.
var APIVersionQuery = func() uint32 {
	return vk.MakeVersion(1, 0, 0)
}

// QueryInstanceCapabilities enumerates what the driver offers at
// instance level. The loader must be initialised first.
func QueryInstanceCapabilities() (InstanceCapabilities, error) {
	var caps InstanceCapabilities
	caps.APIVersion = APIVersionQuery()

	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return caps, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %s", err)
	}
	layers := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers)); err != nil {
		return caps, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %s", err)
	}
	for _, layer := range layers {
		layer.Deref()
		caps.Layers = append(caps.Layers, vk.ToString(layer.LayerName[:]))
	}

	var extCount uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extCount, nil)); err != nil {
		return caps, fmt.Errorf("vk.EnumerateInstanceExtensionProperties(): %s", err)
	}
	extensions := make([]vk.ExtensionProperties, extCount)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extCount, extensions)); err != nil {
		return caps, fmt.Errorf("vk.EnumerateInstanceExtensionProperties(): %s", err)
	}
	for _, ext := range extensions {
		ext.Deref()
		caps.Extensions = append(caps.Extensions, vk.ToString(ext.ExtensionName[:]))
	}
	return caps, nil
}

// Report pairs what the driver advertises with what the catalog would
// negotiate for this host. Used by the argoninfo command.
type Report struct {
	Validation bool                 `json:"validation"`
	Available  InstanceCapabilities `json:"available"`
	Negotiated CapabilityRequest    `json:"negotiated"`
}

// NewCapabilityReport initialises the loader without a window and runs
// capability negotiation without creating an instance.
func NewCapabilityReport(validation bool) (Report, error) {
	if err := initLoader(nil); err != nil {
		return Report{}, err
	}
	available, err := QueryInstanceCapabilities()
	if err != nil {
		return Report{}, err
	}
	negotiated, err := NewCapabilityRequest(HostEnvironment(validation, available), nil, available)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Validation: validation,
		Available:  available,
		Negotiated: negotiated,
	}, nil
}
