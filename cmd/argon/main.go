// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"
	"unsafe"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/argon/core"
)

func init() {
	runtime.LockOSThread()
}

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  50,
	},
}

const (
	screenWidth  = 1024
	screenHeight = 768
)

// vulkanWindow adapts an SDL window to the collaborator the core
// bootstrap consumes.
type vulkanWindow struct {
	*sdl.Window
}

func (w vulkanWindow) VulkanExtensions() []string {
	return w.VulkanGetInstanceExtensions()
}

func (w vulkanWindow) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow("Argon3D",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		screenWidth,
		screenHeight,
		sdl.WINDOW_VULKAN)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

func main() {
	_ = godotenv.Load()

	configuration.Instance.Validation = core.ValidationFromEnv()
	if configuration.Instance.Validation {
		log.SetLevel(log.TraceLevel)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatal(err)
	}
	defer sdl.VulkanUnloadLibrary()

	window := newWindow()
	defer window.Destroy()

	app := core.NewApp(configuration, vulkanWindow{window})
	if err := app.Create(); err != nil {
		log.Fatalf("bootstrap failed: %s", err)
	}

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			if err := app.Render(); err != nil {
				log.Error(err)
				exitC <- struct{}{}
				continue EventLoop
			}
		case <-time.EventTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}

	app.Destroy()
}
