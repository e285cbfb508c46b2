// Package intent provides the intent sources actors read each tick: a
// device-fed buffer, the enemy chase AI and a scripted bot.
package intent

import "github.com/automoto/prism-runner/config"

// Buffer stores the current and previous tick's pressed state for all
// actions. JustPressed is computed by comparing the two.
type Buffer struct {
	current  [config.ActionCount]bool
	previous [config.ActionCount]bool
}

// Update advances one tick and samples every action from poll.
func (b *Buffer) Update(poll func(config.ActionID) bool) {
	b.previous = b.current
	for a := config.ActionID(1); a < config.ActionCount; a++ {
		b.current[a] = poll(a)
	}
}

// Latch advances one tick with exactly the given actions held.
func (b *Buffer) Latch(pressed ...config.ActionID) {
	b.previous = b.current
	b.current = [config.ActionCount]bool{}
	for _, a := range pressed {
		b.Set(a, true)
	}
}

// Set overrides the current state of one action without advancing.
func (b *Buffer) Set(a config.ActionID, pressed bool) {
	if a <= config.ActionNone || a >= config.ActionCount {
		return
	}
	b.current[a] = pressed
}

func (b *Buffer) Pressed(a config.ActionID) bool {
	if a <= config.ActionNone || a >= config.ActionCount {
		return false
	}
	return b.current[a]
}

func (b *Buffer) JustPressed(a config.ActionID) bool {
	if a <= config.ActionNone || a >= config.ActionCount {
		return false
	}
	return b.current[a] && !b.previous[a]
}
