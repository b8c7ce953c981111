//go:build !(tinygo && bootdebug)

package app

import "zuluface/hal"

func bootStep(hal.HAL, string) {}
