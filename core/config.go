// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/gobuffalo/envy"

// ValidationEnvKey is the environment setting that turns on the
// validation layer and the diagnostics bridge.
const ValidationEnvKey = "ARGON_VKDBG"

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Instance InstanceConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between window event polls,
	// in milliseconds
	EventPollDelay int
}

// InstanceConfiguration is used to configure the driver instance
type InstanceConfiguration struct {
	// Validation enables the validation layer and diagnostics.
	// Resolve it once at startup, it must not change afterwards.
	Validation bool

	// WindowExtensions are the instance extensions the windowing
	// system requires on this platform
	WindowExtensions []string
}

// ValidationFromEnv resolves validation mode from the environment.
// Recognised truthy values are "1" and "true", everything else,
// including an unset variable, resolves to false.
func ValidationFromEnv() bool {
	switch envy.Get(ValidationEnvKey, "") {
	case "1", "true":
		return true
	}
	return false
}
