package muffuletta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FlowDefinition is a step flow loaded from a TOML file. Panels are bound in
// code after loading, then the flow runs with Run.
type FlowDefinition struct {
	Title         string
	InitialStepID string
	Steps         []FlowStep
}

type flowFileStep struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
}

type flowFile struct {
	Title       string         `toml:"title"`
	InitialStep string         `toml:"initial_step"`
	Steps       []flowFileStep `toml:"steps"`
}

// LoadFlowFile reads a flow definition from a TOML file. Icon paths are
// resolved relative to the file's directory and loaded eagerly so a missing
// asset surfaces at startup rather than mid-flow.
func LoadFlowFile(path string) (*FlowDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewInfrastructureError("read_flow_file", err)
	}

	var ff flowFile
	if err := toml.Unmarshal(data, &ff); err != nil {
		return nil, NewInfrastructureError("parse_flow_file", err)
	}

	definition := &FlowDefinition{
		Title:         ff.Title,
		InitialStepID: ff.InitialStep,
		Steps:         make([]FlowStep, len(ff.Steps)),
	}

	baseDir := filepath.Dir(path)
	for i, step := range ff.Steps {
		definition.Steps[i] = FlowStep{ID: step.ID, Label: step.Label}
		if step.Icon != "" {
			icon, err := os.ReadFile(filepath.Join(baseDir, step.Icon))
			if err != nil {
				return nil, NewInfrastructureError("load_flow_icon", err)
			}
			definition.Steps[i].Icon = icon
		}
	}

	if err := validateFlow(definition.Steps); err != nil {
		return nil, err
	}
	if ff.InitialStep != "" && !definition.hasStep(ff.InitialStep) {
		return nil, fmt.Errorf("%w: initial step %q not defined", ErrFlowMismatch, ff.InitialStep)
	}
	return definition, nil
}

func (d *FlowDefinition) hasStep(id string) bool {
	for _, step := range d.Steps {
		if step.ID == id {
			return true
		}
	}
	return false
}

// BindPanel attaches a panel renderer to the step with the given ID.
func (d *FlowDefinition) BindPanel(id string, panel PanelFunc) error {
	for i := range d.Steps {
		if d.Steps[i].ID == id {
			d.Steps[i].Panel = panel
			return nil
		}
	}
	return fmt.Errorf("%w: no step %q to bind", ErrFlowMismatch, id)
}

// Run displays the flow. The definition's title and initial step are used
// unless the settings already carry their own.
func (d *FlowDefinition) Run(settings StepFlowSettings) (*StepFlowResult, error) {
	if settings.Title == "" {
		settings.Title = d.Title
	}
	if settings.InitialStepID == "" {
		settings.InitialStepID = d.InitialStepID
	}
	return StepFlow(d.Steps, settings)
}
