package muffuletta

import (
	"fmt"
	"os"
	"time"

	"github.com/dpavese/muffuletta/pkg/muffuletta/constants"
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
	"github.com/dpavese/muffuletta/pkg/muffuletta/stepnav"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

// PanelFunc renders the content of a step into the given area. The renderer
// is already clipped to the panel background; draw relative to area.
type PanelFunc func(renderer *sdl.Renderer, area sdl.Rect)

// FlowStep describes one step of a StepFlow: a stable identifier, the marker
// label shown in the step strip, an optional SVG marker icon, and the panel
// rendered while the step is current.
type FlowStep struct {
	ID    string
	Label string
	Icon  []byte
	Panel PanelFunc
}

// StepFlowSettings configures the step flow component.
type StepFlowSettings struct {
	// Title is rendered above the step strip.
	Title string
	// InitialStepID selects the starting step. The GOTOTAB environment
	// variable takes precedence when set.
	InitialStepID string
	// Location, when set, is kept in sync with the current step and external
	// writes to it drive the flow.
	Location *stepnav.Location
	// BeforeChange interceptors run before each transition and may veto it.
	BeforeChange []stepnav.BeforeFunc
	// AfterChange interceptors run after each committed transition.
	AfterChange []stepnav.AfterFunc
	// NavigatorHook receives the flow's navigator before the initial
	// transition. Keep the handle to resume vetoed transitions with
	// ContinueChange or to drive the flow programmatically.
	NavigatorHook func(*stepnav.Navigator)
	// FooterHelpItems override the default footer. Nil keeps the defaults.
	FooterHelpItems []FooterHelpItem
	// DisableBackButton ignores the back button and the hardware back panel.
	DisableBackButton bool
	// ConfirmButton completes the flow on the last step (default: VirtualButtonStart)
	ConfirmButton constants.VirtualButton
	// ActionButton, when assigned, exits with FlowActionTriggered on press.
	ActionButton constants.VirtualButton
}

// StepFlowResult represents how a step flow ended.
type StepFlowResult struct {
	// Step is the step that was current when the flow ended.
	Step stepnav.Step
	// Action describes the terminal action.
	Action FlowAction
}

var sizeChanged = atomic.NewBool(false)

// NotifySizeChanged tells the active step flow to recompute its layout on the
// next frame. Call after resizing the window programmatically. Safe to call
// from any goroutine.
func NotifySizeChanged() {
	sizeChanged.Store(true)
}

type stepFlowController struct {
	steps    []FlowStep
	settings StepFlowSettings
	nav      *stepnav.Navigator
	snapshot stepnav.Snapshot

	cursor      int // marker strip selection, distinct from the current step
	markerRects []sdl.Rect
	needsLayout bool

	textCache *internal.TextureCache
	icons     map[string]*sdl.Texture

	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time

	showHelp  bool
	action    FlowAction
	cancelled bool
}

// StepFlow displays a guarded multi-step flow: a strip of step markers, the
// current step's panel, and previous/next controls. Transitions run through
// the navigator's interceptors, so a step can veto leaving it; hold on to the
// navigator via NavigatorHook to resume a vetoed change with ContinueChange.
//
// Returns ErrCancelled if the user backs out, ErrFlowMismatch if the steps
// are misconfigured.
func StepFlow(steps []FlowStep, settings StepFlowSettings) (*StepFlowResult, error) {
	if err := validateFlow(steps); err != nil {
		return nil, err
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	ids := make([]string, len(steps))
	for i, step := range steps {
		ids[i] = step.ID
	}

	controller := &stepFlowController{
		steps:         steps,
		settings:      settings,
		nav:           stepnav.New(ids),
		textCache:     internal.NewTextureCache(),
		icons:         make(map[string]*sdl.Texture),
		directional:   internal.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
		needsLayout:   true,
	}
	defer controller.destroyTextures()

	if controller.settings.ConfirmButton == constants.VirtualButtonUnassigned {
		controller.settings.ConfirmButton = constants.VirtualButtonStart
	}
	if controller.settings.FooterHelpItems == nil {
		controller.settings.FooterHelpItems = defaultFooterHelpItems(settings.DisableBackButton)
	}

	for _, fn := range settings.BeforeChange {
		controller.nav.BeforeChange(fn)
	}
	for _, fn := range settings.AfterChange {
		controller.nav.AfterChange(fn)
	}
	controller.nav.OnRender(func(snapshot stepnav.Snapshot) {
		controller.snapshot = snapshot
		controller.cursor = snapshot.Current
	})

	if settings.NavigatorHook != nil {
		settings.NavigatorHook(controller.nav)
	}

	requestedID := os.Getenv(constants.GoToTabEnvVar)
	if requestedID == "" {
		requestedID = settings.InitialStepID
	}
	if err := controller.nav.Activate(settings.Location, requestedID); err != nil {
		return nil, NewInfrastructureError("activate_flow", err)
	}

	for {
		if !controller.handleEvents() {
			break
		}

		if direction := controller.directional.Update(); direction != internal.DirectionNone {
			controller.handleDirection(direction)
		}

		if sizeChanged.Swap(false) {
			controller.needsLayout = true
		}

		controller.render(renderer, window)
		window.Present()
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	result := &StepFlowResult{Action: controller.action}
	if current := controller.nav.CurrentContainer(); current != nil {
		result.Step = *current
	}
	return result, nil
}

func validateFlow(steps []FlowStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrFlowMismatch)
	}

	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.ID == "" {
			return fmt.Errorf("%w: step %d has no id", ErrFlowMismatch, i)
		}
		if seen[step.ID] {
			return fmt.Errorf("%w: duplicate step id %q", ErrFlowMismatch, step.ID)
		}
		seen[step.ID] = true
	}
	return nil
}

func defaultFooterHelpItems(disableBack bool) []FooterHelpItem {
	items := []FooterHelpItem{
		{ButtonName: "◀ ▶", HelpText: captionMove()},
		{ButtonName: "A", HelpText: captionJump()},
		{ButtonName: "L1/R1", HelpText: captionBack() + "/" + captionContinue()},
	}
	if !disableBack {
		items = append(items, FooterHelpItem{ButtonName: "B", HelpText: captionCancel()})
	}
	return items
}

func (c *stepFlowController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	if internal.ConsumeHardwareBack() && !c.settings.DisableBackButton {
		c.nav.Previous()
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
				// Regular and wide layouts share marker geometry; only the
				// compact strip collapses labels and needs a relayout.
				if internal.GetWindow().Breakpoint() == internal.BreakpointCompact {
					c.needsLayout = true
				}
				c.textCache.Destroy()
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			c.directional.SetHeld(inputEvent.Button, inputEvent.Pressed)

			if !inputEvent.Pressed {
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			if !c.handleButton(inputEvent.Button) {
				return false
			}
		}
	}
	return true
}

// handleButton processes a pressed button and reports whether the event loop
// should keep running.
func (c *stepFlowController) handleButton(button constants.VirtualButton) bool {
	if c.showHelp {
		c.showHelp = false
		return true
	}

	switch button {
	case constants.VirtualButtonLeft:
		c.moveCursor(-1)

	case constants.VirtualButtonRight:
		c.moveCursor(1)

	case constants.VirtualButtonA:
		c.jumpToCursor()

	case constants.VirtualButtonL1:
		c.nav.Previous()

	case constants.VirtualButtonR1:
		c.nav.Next()

	case c.settings.ConfirmButton:
		if c.snapshot.Current == len(c.steps)-1 {
			c.action = FlowActionCompleted
			return false
		}

	case constants.VirtualButtonB:
		if !c.settings.DisableBackButton {
			c.cancelled = true
			return false
		}

	case constants.VirtualButtonMenu:
		c.showHelp = true
	}

	if c.settings.ActionButton != constants.VirtualButtonUnassigned && button == c.settings.ActionButton {
		c.action = FlowActionTriggered
		return false
	}
	return true
}

func (c *stepFlowController) handleDirection(direction internal.Direction) {
	switch direction {
	case internal.DirectionLeft:
		c.moveCursor(-1)
	case internal.DirectionRight:
		c.moveCursor(1)
	}
}

func (c *stepFlowController) moveCursor(delta int) {
	next := c.cursor + delta
	if next < 0 || next >= len(c.steps) {
		return
	}
	c.cursor = next
}

// jumpToCursor commits the marker selection as a transition unless the
// marker is disabled.
func (c *stepFlowController) jumpToCursor() {
	if c.cursor < 0 || c.cursor >= len(c.snapshot.Steps) {
		return
	}
	if c.snapshot.Steps[c.cursor].Status == stepnav.StatusDisabled {
		return
	}
	if err := c.nav.GoTo(c.cursor); err != nil {
		internal.GetInternalLogger().Warn("Step jump rejected", "index", c.cursor, "error", err)
	}
}

const (
	stripHeight      = int32(72)
	markerInnerPad   = int32(16)
	markerIconSize   = int32(28)
	markerIconGap    = int32(10)
	controlRowHeight = int32(64)
	contentSidePad   = int32(40)
)

func (c *stepFlowController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if window.Background != nil {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	y := int32(24)
	y += c.renderTitle(renderer, windowWidth, y)
	y += constants.DefaultTitleSpacing

	c.layoutMarkers(windowWidth, y)
	c.renderMarkers(renderer)
	y += stripHeight + 16

	panelBottom := windowHeight - controlRowHeight - footerHeight - 32
	c.renderPanel(renderer, sdl.Rect{
		X: contentSidePad,
		Y: y,
		W: windowWidth - contentSidePad*2,
		H: panelBottom - y,
	})

	c.renderControls(renderer, windowWidth, panelBottom+8)
	renderFooter(renderer, c.settings.FooterHelpItems, 8)

	if c.showHelp {
		c.renderHelpOverlay(renderer, windowWidth, windowHeight)
	}
}

func (c *stepFlowController) renderTitle(renderer *sdl.Renderer, windowWidth, y int32) int32 {
	theme := internal.GetTheme()
	titleFont := internal.Fonts.LargeFont
	height := int32(0)

	if c.settings.Title != "" && titleFont != nil {
		texture, rect := c.textCache.Text(renderer, titleFont, c.settings.Title, theme.TextColor)
		if texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{X: contentSidePad, Y: y, W: rect.W, H: rect.H})
			height = rect.H
		}
	}

	progressFont := internal.Fonts.SmallFont
	if progressFont != nil && c.snapshot.Current >= 0 {
		progress := captionStepProgress(c.snapshot.Current+1, len(c.steps))
		texture, rect := c.textCache.Text(renderer, progressFont, progress, theme.HintColor)
		if texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{
				X: windowWidth - contentSidePad - rect.W,
				Y: y + internal.Max32(0, height-rect.H),
				W: rect.W, H: rect.H,
			})
		}
	}
	return internal.Max32(height, 8)
}

// layoutMarkers measures the marker strip and balances the leftover width
// into padding so the strip spans the full content width. Compact windows
// drop the labels and keep icon-only markers.
func (c *stepFlowController) layoutMarkers(windowWidth, y int32) {
	if !c.needsLayout && len(c.markerRects) == len(c.steps) {
		for i := range c.markerRects {
			c.markerRects[i].Y = y
		}
		return
	}

	compact := internal.GetWindow().Breakpoint() == internal.BreakpointCompact
	font := internal.Fonts.MediumFont

	widths := make([]int32, len(c.steps))
	for i, step := range c.steps {
		w := markerIconSize + markerInnerPad*2
		if !compact && font != nil {
			labelW, _ := internal.MeasureText(font, step.Label)
			w += markerIconGap + labelW
		}
		widths[i] = w
	}

	stripWidth := windowWidth - contentSidePad*2
	paddings := fillNavigation(stripWidth, widths)

	c.markerRects = make([]sdl.Rect, len(c.steps))
	x := contentSidePad
	for i, w := range widths {
		x += paddings[i].Left
		c.markerRects[i] = sdl.Rect{X: x, Y: y, W: w, H: stripHeight - 16}
		x += w + paddings[i].Right
	}
	c.needsLayout = false
}

func (c *stepFlowController) renderMarkers(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	compact := internal.GetWindow().Breakpoint() == internal.BreakpointCompact

	for i, rect := range c.markerRects {
		if i >= len(c.snapshot.Steps) {
			break
		}
		status := c.snapshot.Steps[i].Status

		background := theme.PanelColor
		label := theme.TextColor
		switch status {
		case stepnav.StatusActive:
			background = theme.AccentColor
			label = theme.HighlightedTextColor
		case stepnav.StatusVisited:
			background = theme.VisitedColor
			label = theme.HighlightedTextColor
		case stepnav.StatusDisabled:
			background = theme.DisabledColor
			label = theme.HintColor
		}

		internal.DrawRoundedRect(renderer, &rect, rect.H/2, background)

		x := rect.X + markerInnerPad
		if icon := c.iconTexture(renderer, i, status); icon != nil {
			renderer.Copy(icon, nil, &sdl.Rect{
				X: x,
				Y: rect.Y + (rect.H-markerIconSize)/2,
				W: markerIconSize, H: markerIconSize,
			})
		} else if glyph := statusGlyph(status); glyph != "" && internal.Fonts.IconFont != nil {
			internal.RenderText(renderer, internal.Fonts.IconFont, glyph,
				x, rect.Y+(rect.H-markerIconSize)/2, label)
		}
		x += markerIconSize + markerIconGap

		if !compact && font != nil {
			texture, size := c.textCache.Text(renderer, font, c.steps[i].Label, label)
			if texture != nil {
				renderer.Copy(texture, nil, &sdl.Rect{
					X: x, Y: rect.Y + (rect.H-size.H)/2, W: size.W, H: size.H,
				})
			}
		}

		if i == c.cursor {
			underline := sdl.Rect{X: rect.X, Y: rect.Y + rect.H + 4, W: rect.W, H: 4}
			internal.DrawRoundedRect(renderer, &underline, 2, theme.AccentColor)
		}
	}
}

// statusGlyph is the icon-font fallback for steps without a custom SVG icon.
func statusGlyph(status stepnav.Status) string {
	switch status {
	case stepnav.StatusVisited:
		return constants.Check
	case stepnav.StatusDisabled:
		return constants.Lock
	default:
		return ""
	}
}

// iconTexture returns the marker icon for a step in a given status,
// rasterizing and caching it on first use. Steps without a custom icon fall
// back to the built-in status icons; active/default markers without one get
// no icon.
func (c *stepFlowController) iconTexture(renderer *sdl.Renderer, index int, status stepnav.Status) *sdl.Texture {
	svg := c.steps[index].Icon
	if svg == nil {
		switch status {
		case stepnav.StatusVisited:
			svg = internal.CheckIconSVG()
		case stepnav.StatusDisabled:
			svg = internal.LockIconSVG()
		default:
			return nil
		}
	}

	key := fmt.Sprintf("%s|%d", c.steps[index].ID, status)
	if texture, ok := c.icons[key]; ok {
		return texture
	}

	texture, err := internal.RasterizeSVG(renderer, svg, markerIconSize, markerIconSize)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to rasterize marker icon",
			"step", c.steps[index].ID, "error", err)
		c.icons[key] = nil
		return nil
	}
	c.icons[key] = texture
	return texture
}

func (c *stepFlowController) renderPanel(renderer *sdl.Renderer, area sdl.Rect) {
	if area.H <= 0 {
		return
	}
	theme := internal.GetTheme()
	internal.DrawRoundedRect(renderer, &area, 12, theme.PanelColor)

	current := c.snapshot.Current
	if current < 0 || current >= len(c.steps) {
		return
	}

	pad := internal.UniformPadding(markerInnerPad)
	inner := sdl.Rect{
		X: area.X + pad.Left, Y: area.Y + pad.Top,
		W: area.W - pad.Horizontal(), H: area.H - pad.Top - pad.Bottom,
	}

	panel := c.steps[current].Panel
	if panel == nil {
		// Unbound steps show their label so a half-configured flow is still
		// navigable during development.
		internal.RenderMultilineText(renderer, internal.Fonts.MediumFont,
			c.steps[current].Label, inner, theme.HintColor, constants.TextAlignCenter)
		return
	}

	renderer.SetClipRect(&inner)
	panel(renderer, inner)
	renderer.SetClipRect(nil)
}

func (c *stepFlowController) renderControls(renderer *sdl.Renderer, windowWidth, y int32) {
	font := internal.Fonts.MediumFont
	if font == nil {
		return
	}

	nextCaption := captionContinue()
	if c.snapshot.Current == len(c.steps)-1 {
		nextCaption = captionFinish()
	}

	c.renderControlPill(renderer, font, captionBack(), constants.ChevronLeft, false,
		contentSidePad, y, c.snapshot.PreviousDisabled)

	nextW := c.controlPillWidth(font, nextCaption)
	c.renderControlPill(renderer, font, nextCaption, constants.ChevronRight, true,
		windowWidth-contentSidePad-nextW, y, c.snapshot.NextDisabled)
}

func (c *stepFlowController) controlPillWidth(font *ttf.Font, caption string) int32 {
	w, _ := internal.MeasureText(font, caption)
	w += markerInnerPad * 2
	if internal.Fonts.IconFont != nil {
		glyphW, _ := internal.MeasureText(internal.Fonts.IconFont, constants.ChevronRight)
		w += glyphW + markerIconGap
	}
	return w
}

func (c *stepFlowController) renderControlPill(renderer *sdl.Renderer, font *ttf.Font, caption, glyph string, glyphAfter bool, x, y int32, disabled bool) {
	theme := internal.GetTheme()

	background := theme.AccentColor
	label := theme.HighlightedTextColor
	if disabled {
		background = theme.DisabledColor
		label = theme.HintColor
	}

	iconFont := internal.Fonts.IconFont
	glyphW := int32(0)
	if iconFont != nil && glyph != "" {
		glyphW, _ = internal.MeasureText(iconFont, glyph)
		glyphW += markerIconGap
	}

	w, h := internal.MeasureText(font, caption)
	pill := sdl.Rect{X: x, Y: y, W: w + glyphW + markerInnerPad*2, H: h + markerInnerPad}
	internal.DrawRoundedRect(renderer, &pill, pill.H/2, background)

	textX := pill.X + markerInnerPad
	if glyphW > 0 && !glyphAfter {
		internal.RenderText(renderer, iconFont, glyph, textX, pill.Y+markerInnerPad/2, label)
		textX += glyphW
	}

	texture, size := c.textCache.Text(renderer, font, caption, label)
	if texture != nil {
		renderer.Copy(texture, nil, &sdl.Rect{
			X: textX, Y: pill.Y + markerInnerPad/2, W: size.W, H: size.H,
		})
	}

	if glyphW > 0 && glyphAfter {
		internal.RenderText(renderer, iconFont, glyph, textX+w+markerIconGap, pill.Y+markerInnerPad/2, label)
	}
}

func (c *stepFlowController) renderHelpOverlay(renderer *sdl.Renderer, windowWidth, windowHeight int32) {
	theme := internal.GetTheme()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 180)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: windowWidth, H: windowHeight})

	font := internal.Fonts.MediumFont
	if font == nil {
		return
	}

	lines := make([]string, 0, len(c.settings.FooterHelpItems))
	for _, item := range c.settings.FooterHelpItems {
		lines = append(lines, item.ButtonName+"  "+item.HelpText)
	}

	lineHeight := int32(font.Height()) + 12
	titleFont := internal.Fonts.ExtraLargeFont
	titleHeight := lineHeight
	if titleFont != nil {
		titleHeight = int32(titleFont.Height()) + 24
	}

	y := (windowHeight - titleHeight - lineHeight*int32(len(lines))) / 2
	if titleFont != nil {
		w, _ := internal.MeasureText(titleFont, captionHelp())
		internal.RenderText(renderer, titleFont, captionHelp(), (windowWidth-w)/2, y, theme.HighlightedTextColor)
	}
	y += titleHeight

	for _, line := range lines {
		w, _ := internal.MeasureText(font, line)
		internal.RenderText(renderer, font, line, (windowWidth-w)/2, y, theme.HighlightedTextColor)
		y += lineHeight
	}
}

func (c *stepFlowController) destroyTextures() {
	c.textCache.Destroy()
	for _, texture := range c.icons {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.icons = make(map[string]*sdl.Texture)
}
