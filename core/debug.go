// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"unsafe"

	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// DebugConfig selects which diagnostic records the driver delivers.
type DebugConfig struct {
	Flags vk.DebugReportFlags
}

// DefaultDebugConfig asks for every tier the driver can report.
var DefaultDebugConfig = &DebugConfig{
	Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
		vk.DebugReportWarningBit |
		vk.DebugReportPerformanceWarningBit |
		vk.DebugReportInformationBit |
		vk.DebugReportDebugBit),
}

func debugReportCreateInfo(cfg *DebugConfig) vk.DebugReportCallbackCreateInfo {
	return vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       cfg.Flags,
		PfnCallback: bridgeReport,
	}
}

// bridgeReport is the process-wide entry point the driver invokes with
// diagnostic records. The driver may call it from its own threads at
// any point during a driver call, so it only formats the transient
// record and hands it to the logger, whose locking makes the crossing
// safe. Nothing from the record is retained past return.
func bridgeReport(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	log.WithFields(log.Fields{
		"layer": layerPrefix,
		"code":  messageCode,
	}).Log(reportLogLevel(flags), message)

	// Purely observational, never aborts the triggering call.
	return vk.False
}

// reportLogLevel maps driver severities onto logger levels one to one.
func reportLogLevel(flags vk.DebugReportFlags) log.Level {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return log.ErrorLevel
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return log.WarnLevel
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}

// NewVulkanMessenger registers the diagnostics bridge with a live
// instance. The returned Messenger must be destroyed before the
// instance it is registered on.
func NewVulkanMessenger(instance Instance, cfg *DebugConfig) (Messenger, error) {
	raw, ok := instance.Inner().(vk.Instance)
	if !ok {
		return nil, &DriverError{Op: "core.NewVulkanMessenger()", Result: vk.ErrorInitializationFailed}
	}

	createInfo := debugReportCreateInfo(cfg)
	var callback vk.DebugReportCallback
	if res := vk.CreateDebugReportCallback(raw, &createInfo, nil, &callback); res != vk.Success {
		return nil, &DriverError{Op: "vk.CreateDebugReportCallback()", Result: res}
	}

	return &VulkanMessenger{
		instance: raw,
		callback: callback,
	}, nil
}

// VulkanMessenger owns one registered debug report callback.
type VulkanMessenger struct {
	instance vk.Instance
	callback vk.DebugReportCallback
}

// Destroy implements interface
func (m *VulkanMessenger) Destroy() {
	vk.DestroyDebugReportCallback(m.instance, m.callback, nil)
	m.callback = vk.NullDebugReportCallback
}
