package engine

import (
	_ "embed"
	"fmt"

	"github.com/ScaratP/TypingMonster/engine/fsm"
)

//go:embed lifecycle.toml
var lifecycleGraph []byte

// Lifecycle triggers accepted by the controller
const (
	TriggerStart       = "Start"
	TriggerPause       = "Pause"
	TriggerResume      = "Resume"
	TriggerRestart     = "Restart"
	TriggerEnd         = "End"
	TriggerAcknowledge = "Acknowledge"
)

// newLifecycle binds controller actions to the embedded lifecycle graph and enters the initial state
func newLifecycle(c *Controller) (*fsm.Machine[*Controller], error) {
	m := fsm.NewMachine[*Controller]()

	m.RegisterAction("ResetSession", func(c *Controller, _ map[string]any) { c.resetSession() })
	m.RegisterAction("BeginSession", func(c *Controller, _ map[string]any) { c.beginSession() })
	m.RegisterAction("CancelTimers", func(c *Controller, _ map[string]any) { c.cancelTimers() })
	m.RegisterAction("PauseClock", func(c *Controller, _ map[string]any) {
		c.clock.Pause()
		c.state.Paused = true
	})
	m.RegisterAction("ResumeClock", func(c *Controller, _ map[string]any) {
		c.clock.Resume()
		c.state.Paused = false
	})
	m.RegisterAction("ReportGameEnded", func(c *Controller, _ map[string]any) { c.reportGameEnded() })
	m.RegisterAction("Hint", func(c *Controller, args map[string]any) {
		if text, ok := args["text"].(string); ok {
			c.state.Hint = text
		}
	})

	if err := m.LoadConfig(lifecycleGraph); err != nil {
		return nil, fmt.Errorf("lifecycle graph: %w", err)
	}
	if err := m.Init(c); err != nil {
		return nil, fmt.Errorf("lifecycle init: %w", err)
	}
	return m, nil
}
