//go:build js

package web

// supportsExit is false in the browser: the page owns the lifetime of the game.
const supportsExit = false
