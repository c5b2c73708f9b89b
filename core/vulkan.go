// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// DefaultVulkanApplicationInfo application info describes a Vulkan application
var DefaultVulkanApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   safeString("Argon3D"),
	PEngineName:        safeString("Argon3D"),
}

// initLoader resolves the driver entry points. A nil procAddr asks the
// loader to resolve them itself, otherwise the windowing system's
// vkGetInstanceProcAddr is used.
func initLoader(procAddr unsafe.Pointer) error {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return fmt.Errorf("%w: %s", ErrLoaderUnavailable, err)
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}
	if err := vk.Init(); err != nil {
		return fmt.Errorf("%w: %s", ErrLoaderUnavailable, err)
	}
	return nil
}

// NewVulkanInstance negotiates capabilities and creates a Vulkan
// instance in a single driver call. When cfg.Validation is set the
// diagnostics create info is chained onto the creation request, so the
// driver reports on instance creation itself, and the caller is
// expected to attach a Messenger afterwards. On error the caller holds
// nothing to clean up.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration) (Instance, error) {
	if err := initLoader(procAddr); err != nil {
		return nil, err
	}

	available, err := QueryInstanceCapabilities()
	if err != nil {
		return nil, err
	}

	caps, err := NewCapabilityRequest(HostEnvironment(cfg.Validation, available), cfg.WindowExtensions, available)
	if err != nil {
		return nil, err
	}

	/* Create instance */
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		Flags:                   caps.Flags,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(caps.Extensions)),
		PpEnabledExtensionNames: safeStrings(caps.Extensions),
		EnabledLayerCount:       uint32(len(caps.Layers)),
		PpEnabledLayerNames:     safeStrings(caps.Layers),
	}

	if cfg.Validation {
		debugInfo := debugReportCreateInfo(DefaultDebugConfig)
		// The chained create info is only read during the creation
		// call, the C copy can go once vk.CreateInstance returns.
		ref, allocs := debugInfo.PassRef()
		defer allocs.Free()
		instanceInfo.PNext = unsafe.Pointer(ref)
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&instanceInfo, nil, &instance); res != vk.Success {
		return nil, &DriverError{Op: "vk.CreateInstance()", Result: res}
	}
	vk.InitInstance(instance)

	return &VulkanInstance{
		capabilities: caps,
		instance:     instance,
	}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	capabilities CapabilityRequest

	instance vk.Instance
}

// Extensions implements interface
func (v *VulkanInstance) Extensions() []string {
	return v.capabilities.Extensions
}

// Layers implements interface
func (v *VulkanInstance) Layers() []string {
	return v.capabilities.Layers
}

// Inner returns internal vk.Instance
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	vk.DestroyInstance(v.instance, nil)
	v.instance = nil
}
