package internal

import (
	"github.com/dpavese/muffuletta/pkg/muffuletta/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a processed input event, abstracted to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps raw SDL keyboard and controller events to virtual
// buttons so components never deal with physical codes.
type InputProcessor struct {
	controllers []*sdl.GameController
}

var processor *InputProcessor

func InitInputProcessor() {
	processor = &InputProcessor{}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			GetInternalLogger().Warn("Failed to open game controller", "index", i)
			continue
		}
		processor.controllers = append(processor.controllers, controller)
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent translates an SDL event into a virtual button event.
// Returns nil for events that do not map to a button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button := keyboardButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button := controllerButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}

	return nil
}

// keyboardButton maps development-mode keyboard input onto the virtual pad.
func keyboardButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_z:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_x:
		return constants.VirtualButtonB
	case sdl.K_PAGEUP, sdl.K_q:
		return constants.VirtualButtonL1
	case sdl.K_PAGEDOWN, sdl.K_w:
		return constants.VirtualButtonR1
	case sdl.K_s:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_F1, sdl.K_h:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func controllerButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func CloseAllControllers() {
	if processor == nil {
		return
	}
	for _, controller := range processor.controllers {
		controller.Close()
	}
	processor.controllers = nil
}
