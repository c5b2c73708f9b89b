// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// State is the lifecycle state of an App. It only ever moves forward.
type State int

// Lifecycle states, in order.
const (
	StateUninitialized State = iota
	StateLive
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLive:
		return "live"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// App owns the driver connection end to end: it is the only holder of
// the instance and the diagnostics handles, and it guarantees the
// teardown order between them. The hosting window-event loop drives it
// through Create, Render and Destroy from a single thread.
type App struct {
	state State

	cfg    Configuration
	window Window

	instance  Instance
	messenger Messenger
}

// NewApp prepares an uninitialized App around the hosting window.
// Nothing touches the driver until Create.
func NewApp(cfg Configuration, window Window) *App {
	return &App{
		state:  StateUninitialized,
		cfg:    cfg,
		window: window,
	}
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Create bootstraps the driver connection. Valid exactly once, from the
// uninitialized state; the window must already exist. On error the App
// stays uninitialized and holds nothing, the host must not proceed to
// later stages.
func (a *App) Create() error {
	a.mustBe(StateUninitialized, "Create")

	cfg := a.cfg.Instance
	cfg.WindowExtensions = a.window.VulkanExtensions()

	instance, err := NewVulkanInstance(DefaultVulkanApplicationInfo, a.window.ProcAddr(), cfg)
	if err != nil {
		return err
	}

	if cfg.Validation {
		messenger, err := NewVulkanMessenger(instance, DefaultDebugConfig)
		if err != nil {
			instance.Destroy()
			return err
		}
		a.messenger = messenger
		log.Debug("validation diagnostics attached")
	}

	a.instance = instance
	a.state = StateLive

	log.WithFields(log.Fields{
		"extensions": instance.Extensions(),
		"layers":     instance.Layers(),
	}).Info("driver instance created")
	return nil
}

// Render is the per-frame hook. Nothing renders at this stage yet, the
// host may call it any number of times while the App is live.
func (a *App) Render() error {
	a.mustBe(StateLive, "Render")
	return nil
}

// Destroy tears the connection down. Valid exactly once, from the live
// state. The diagnostics handle is released strictly before the
// instance it is defined in terms of.
func (a *App) Destroy() {
	a.mustBe(StateLive, "Destroy")

	if a.messenger != nil {
		a.messenger.Destroy()
		a.messenger = nil
	}
	a.instance.Destroy()
	a.instance = nil
	a.state = StateDestroyed

	log.Info("driver instance destroyed")
}

// mustBe panics on lifecycle misuse. Calling a hook in the wrong state
// is a programming error in the host, not a recoverable condition.
func (a *App) mustBe(want State, op string) {
	if a.state != want {
		panic(fmt.Sprintf("core: %s called in %s state, want %s", op, a.state, want))
	}
}
