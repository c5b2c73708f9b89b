// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core implements the bootstrap stage of the Argon renderer:
// loader resolution, instance capability negotiation, diagnostics and
// lifecycle management. Later rendering stages build on the Instance
// it produces.
package core

import "unsafe"

// Instance describes a live connection to the graphics driver.
// Once created it is ready to use.
type Instance interface {
	// Extensions returns the instance extensions the connection
	// was created with, in the order they were negotiated.
	Extensions() []string

	// Layers returns the instance layers the connection was created with.
	Layers() []string

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// Messenger describes a registered diagnostics callback. It exists only
// while validation mode is on and its lifetime nests inside the Instance
// that it reports on.
type Messenger interface {
	// Destroy unregisters the callback. Must happen before the
	// owning Instance is destroyed.
	Destroy()
}

// Window is the windowing collaborator the bootstrap consumes. It is
// implemented by whatever toolkit hosts the application window.
type Window interface {
	// VulkanExtensions returns the instance extensions the windowing
	// system mandates on this platform.
	VulkanExtensions() []string

	// ProcAddr returns the toolkit's vkGetInstanceProcAddr pointer,
	// or nil to let the loader resolve its own entry points.
	ProcAddr() unsafe.Pointer
}
