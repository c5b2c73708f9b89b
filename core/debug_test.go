// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	vk "github.com/vulkan-go/vulkan"
)

func TestReportLogLevel(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		flags vk.DebugReportFlagBits
		want  log.Level
	}{
		{vk.DebugReportErrorBit, log.ErrorLevel},
		{vk.DebugReportWarningBit, log.WarnLevel},
		{vk.DebugReportPerformanceWarningBit, log.WarnLevel},
		{vk.DebugReportInformationBit, log.DebugLevel},
		{vk.DebugReportDebugBit, log.TraceLevel},
		// Error outranks everything when the driver sets several bits.
		{vk.DebugReportErrorBit | vk.DebugReportWarningBit, log.ErrorLevel},
		{vk.DebugReportWarningBit | vk.DebugReportInformationBit, log.WarnLevel},
	} {
		c.Assert(reportLogLevel(vk.DebugReportFlags(tc.flags)), qt.Equals, tc.want,
			qt.Commentf("flags=%#x", tc.flags))
	}
}

func TestBridgeReportForwardsToLogger(t *testing.T) {
	c := qt.New(t)

	hook := test.NewGlobal()
	defer hook.Reset()

	oldLevel := log.GetLevel()
	log.SetLevel(log.TraceLevel)
	defer log.SetLevel(oldLevel)

	ret := bridgeReport(
		vk.DebugReportFlags(vk.DebugReportErrorBit),
		vk.DebugReportObjectTypeUnknown, 0, 0, 61, "validation",
		"vkCreateInstance: something is off", nil)

	// Observational only, must never abort the triggering call.
	c.Assert(ret, qt.Equals, vk.Bool32(vk.False))

	entry := hook.LastEntry()
	c.Assert(entry, qt.IsNotNil)
	c.Assert(entry.Level, qt.Equals, log.ErrorLevel)
	c.Assert(entry.Message, qt.Equals, "vkCreateInstance: something is off")
	c.Assert(entry.Data["layer"], qt.Equals, "validation")
	c.Assert(entry.Data["code"], qt.Equals, int32(61))
}

func TestBridgeReportSeverityFanout(t *testing.T) {
	c := qt.New(t)

	hook := test.NewGlobal()
	defer hook.Reset()

	oldLevel := log.GetLevel()
	log.SetLevel(log.TraceLevel)
	defer log.SetLevel(oldLevel)

	for _, tc := range []struct {
		flags vk.DebugReportFlagBits
		want  log.Level
	}{
		{vk.DebugReportWarningBit, log.WarnLevel},
		{vk.DebugReportInformationBit, log.DebugLevel},
		{vk.DebugReportDebugBit, log.TraceLevel},
	} {
		bridgeReport(vk.DebugReportFlags(tc.flags),
			vk.DebugReportObjectTypeUnknown, 0, 0, 0, "general", "msg", nil)
		c.Assert(hook.LastEntry().Level, qt.Equals, tc.want)
	}
}

func TestDebugReportCreateInfo(t *testing.T) {
	c := qt.New(t)

	info := debugReportCreateInfo(DefaultDebugConfig)
	c.Assert(info.SType, qt.Equals, vk.StructureTypeDebugReportCallbackCreateInfo)
	c.Assert(info.Flags, qt.Equals, DefaultDebugConfig.Flags)
	c.Assert(info.PfnCallback, qt.IsNotNil)
}

func TestDefaultDebugConfigCoversAllTiers(t *testing.T) {
	c := qt.New(t)

	for _, bit := range []vk.DebugReportFlagBits{
		vk.DebugReportErrorBit,
		vk.DebugReportWarningBit,
		vk.DebugReportPerformanceWarningBit,
		vk.DebugReportInformationBit,
		vk.DebugReportDebugBit,
	} {
		c.Assert(DefaultDebugConfig.Flags&vk.DebugReportFlags(bit) != 0, qt.IsTrue)
	}
}
