package factory

import (
	"fmt"
	"sort"

	"github.com/automoto/prism-runner/assets/animations"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
)

// NewPlayback returns a clip player over the configured clip library.
func NewPlayback() *engine.ClipPlayer {
	return engine.NewClipPlayer(animations.NewLibrary(cfg.Animation.Clips))
}

// clipChecker is implemented by playbacks that can report known clips.
type clipChecker interface {
	Has(clip string) bool
}

// checkClips verifies every clip the actor's states request is playable.
// Playbacks that cannot report their clips are trusted.
func checkClips(table *cfg.ActionTable, playback engine.Playback) error {
	checker, ok := playback.(clipChecker)
	if !ok {
		return nil
	}

	states := make([]cfg.StateID, 0, len(table.States))
	for s := range table.States {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	for _, s := range states {
		clip := table.States[s].Clip
		if !checker.Has(clip) {
			return fmt.Errorf("%w: %q for state %s", ErrMissingClip, clip, s)
		}
	}
	return nil
}
