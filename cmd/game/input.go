package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickAimReach is how far ahead of the player a stick aim points.
	stickAimReach = 100.0
)

// InputSystem polls keyboard, mouse and the first gamepad into every Input
// component. Camera returns the world position of the screen's top-left
// corner; nil means the screen and world line up.
type InputSystem struct {
	Camera func() cp.Vector
}

func NewInputSystem(camera func() cp.Vector) *InputSystem {
	return &InputSystem{Camera: camera}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	move := cp.Vector{}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += 1
	}
	sneak := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	dodge := inpututil.IsKeyJustPressed(ebiten.KeyControlLeft)
	attack := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	mx, my := ebiten.CursorPosition()
	aim := cp.Vector{X: float64(mx), Y: float64(my)}
	if i.Camera != nil {
		aim = aim.Add(i.Camera())
	}
	var stick cp.Vector

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			move = cp.Vector{X: lx, Y: ly}
		}

		sneak = sneak || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		dodge = dodge || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		attack = attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			stick = cp.Vector{X: rx, Y: ry}
		}
	}

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		input.Move = move
		input.Sneak = sneak
		input.Dodge = dodge
		input.Attack = attack
		input.Aim = aim
		input.HasAim = true
		if stick != (cp.Vector{}) {
			if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
				input.Aim = t.Pos.Add(stick.Normalize().Mult(stickAimReach))
			}
		}
	})
}
