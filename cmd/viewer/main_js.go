//go:build js

// Command viewer runs the oxy view port in a browser page.
//
//	GOOS=js GOARCH=wasm go build -o viewer.wasm ./cmd/viewer
package main

import (
	"context"
	"log"

	"github.com/Carmen-Shannon/oxy-viewport/engine"
	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform/web"
)

func main() {
	cfg := config.Default()
	b := web.New(cfg, "oxy viewport")
	d := engine.NewDriver(cfg)
	d.Start(context.Background(), web.Constructor(b))

	if err := web.Run(b, d); err != nil {
		log.Fatal(err)
	}
}
