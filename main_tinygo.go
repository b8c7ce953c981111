//go:build tinygo && baremetal && rp2040

package main

import (
	"zuluface/app"
	"zuluface/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
