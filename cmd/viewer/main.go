//go:build !js

// Command viewer opens the oxy view port: a lit cube, a light you can drag and a fly camera.
//
//	viewer -backend native     GLFW window drawn with WebGPU (default)
//	viewer -backend web        Ebitengine window with the Dear ImGui debug panel
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine"
	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform/native"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform/web"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/Carmen-Shannon/oxy-viewport/engine/window"
)

const title = "oxy viewport"

func main() {
	configPath := flag.String("config", "viewer.yaml", "YAML or JSON config file; missing files use defaults")
	backend := flag.String("backend", "native", "native or web")
	profile := flag.Bool("profile", false, "log frame timings once a second")
	uncapped := flag.Bool("uncapped", false, "present without vsync (native only)")
	lightTexture := flag.String("light-texture", "", "image file for the light marker; empty keeps it white")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	options := []engine.DriverBuilderOption{engine.WithProfiling(*profile)}
	if *lightTexture != "" {
		tex, err := common.LoadTexture(*lightTexture)
		if err != nil {
			log.Fatal(err)
		}
		options = append(options, engine.WithViewPortOptions(viewport.WithLightTexture(&tex)))
	}

	switch *backend {
	case "native":
		err = runNative(cfg, *uncapped, options...)
	case "web":
		err = runWeb(cfg, options...)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runNative(cfg config.Config, uncapped bool, options ...engine.DriverBuilderOption) error {
	win, err := window.NewWindow(
		window.WithTitle(title),
		window.WithSize(cfg.Width, cfg.Height),
	)
	if err != nil {
		return err
	}

	mode := renderer.PresentModeVSync
	if uncapped {
		mode = renderer.PresentModeUncapped
	}
	d := engine.NewDriver(cfg, options...)
	d.Start(context.Background(), native.Constructor(win, cfg, renderer.WithPresentMode(mode)))

	if err := native.Run(win, d); err != nil {
		return err
	}
	return d.Err()
}

func runWeb(cfg config.Config, options ...engine.DriverBuilderOption) error {
	b := web.New(cfg, title)
	d := engine.NewDriver(cfg, append(options, engine.WithOverlay(web.PanelOverlay))...)
	d.Start(context.Background(), web.Constructor(b))

	if err := web.Run(b, d); err != nil {
		return err
	}
	return d.Err()
}
