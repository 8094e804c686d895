package components

import (
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PromptLabel draws the interaction prompt centred near the bottom of the
// screen, and short notices such as a locked door's message above it.
type PromptLabel struct {
	engine.BaseComponent

	FontSize int32
	Color    rl.Color
	// Margin is the gap between the prompt and the bottom of the screen.
	Margin int32

	text    string
	visible bool

	notice     string
	noticeLeft float32
}

func NewPromptLabel() *PromptLabel {
	return &PromptLabel{
		FontSize: 24,
		Color:    rl.White,
		Margin:   120,
	}
}

func (p *PromptLabel) ShowPrompt(text string) {
	p.text = text
	p.visible = true
}

func (p *PromptLabel) HidePrompt() {
	p.visible = false
}

func (p *PromptLabel) SetText(text string) {
	p.text = text
}

func (p *PromptLabel) Text() string {
	return p.text
}

func (p *PromptLabel) Visible() bool {
	return p.visible
}

// Notify shows message for seconds, replacing any current notice.
func (p *PromptLabel) Notify(message string, seconds float32) {
	p.notice = message
	p.noticeLeft = seconds
}

// Notice returns the notice currently on screen, if any.
func (p *PromptLabel) Notice() string {
	if p.noticeLeft <= 0 {
		return ""
	}
	return p.notice
}

func (p *PromptLabel) Update(deltaTime float32) {
	if p.noticeLeft > 0 {
		p.noticeLeft -= deltaTime
	}
}

func (p *PromptLabel) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(rl.GetScreenHeight()) - p.Margin

	if p.visible && p.text != "" {
		p.drawCentered(p.text, screenW, y, p.Color)
	}
	if notice := p.Notice(); notice != "" {
		p.drawCentered(notice, screenW, y-p.FontSize-12, rl.Orange)
	}
}

func (p *PromptLabel) drawCentered(text string, screenW, y int32, color rl.Color) {
	width := rl.MeasureText(text, p.FontSize)
	x := (screenW - width) / 2
	rl.DrawRectangle(x-8, y-4, width+16, p.FontSize+8, rl.Fade(rl.Black, 0.5))
	rl.DrawText(text, x, y, p.FontSize, color)
}
