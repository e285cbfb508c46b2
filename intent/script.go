package intent

import (
	"embed"
	"fmt"
	"strings"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/logger"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads an embedded bot script by file name.
func LoadScript(name string) ([]byte, error) {
	return ScriptsFS.ReadFile("scripts/" + strings.TrimPrefix(name, "scripts/"))
}

// Script is a Brain driven by a tengo program. Each tick the program sees
// the observation as the global map `obs` and assigns the names of the
// actions to hold to the global array `press`.
type Script struct {
	Buffer
	compiled *tengo.Compiled
	failed   bool
}

// scriptModules are the stdlib modules bot scripts may import. Nothing
// that reaches the host or a shared random source.
var scriptModules = []string{"fmt", "math", "text", "enum"}

func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("obs", map[string]interface{}{})
	_ = script.Add("press", []interface{}{})
	script.SetImports(stdlib.GetModuleMap(scriptModules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("intent: compile script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

func (s *Script) Think(obs engine.Observation) {
	pressed, err := s.run(obs)
	if err != nil {
		// Keep the actor idle rather than replaying stale input.
		if !s.failed {
			logger.Warn("bot script failed", zap.Error(err))
			s.failed = true
		}
		s.Latch()
		return
	}
	s.failed = false
	s.Latch(pressed...)
}

func (s *Script) run(obs engine.Observation) ([]config.ActionID, error) {
	if err := s.compiled.Set("obs", observationMap(obs)); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("press", []interface{}{}); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, err
	}

	var pressed []config.ActionID
	for _, v := range s.compiled.Get("press").Array() {
		name, ok := v.(string)
		if !ok {
			continue
		}
		if a, ok := config.ActionByName(name); ok {
			pressed = append(pressed, a)
		}
	}
	return pressed, nil
}

func observationMap(obs engine.Observation) map[string]interface{} {
	return map[string]interface{}{
		"tick":       obs.Tick,
		"self_x":     obs.SelfX,
		"self_y":     obs.SelfY,
		"target_x":   obs.TargetX,
		"target_y":   obs.TargetY,
		"has_target": obs.HasTarget,
		"hp":         obs.HP,
		"grounded":   obs.Grounded,
		"facing":     obs.Facing,
		"state":      obs.State.String(),
	}
}
