//go:build !js

package web

const supportsExit = true
