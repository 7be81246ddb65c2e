package webkit

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/application/port/mocks"
	"github.com/bnema/webshim/internal/domain/mouse"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMouseBridge_SynthesizesBackAndForward(t *testing.T) {
	tests := []struct {
		name      string
		ev        port.NativeMouseEvent
		down      bool
		wantEvent string
		wantBtn   string
	}{
		{
			name:      "back press",
			ev:        port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 3},
			down:      true,
			wantEvent: `new MouseEvent("mousedown"`,
			wantBtn:   "button: 3,",
		},
		{
			name:      "back release",
			ev:        port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 3},
			wantEvent: `new MouseEvent("mouseup"`,
			wantBtn:   "button: 3,",
		},
		{
			name:      "forward press",
			ev:        port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 4},
			down:      true,
			wantEvent: `new MouseEvent("mousedown"`,
			wantBtn:   "button: 4,",
		},
		{
			name:      "forward release",
			ev:        port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 4},
			wantEvent: `new MouseEvent("mouseup"`,
			wantBtn:   "button: 4,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scripts := mocks.NewMockScriptEvaluator(ctrl)
			fallback := mocks.NewMockDefaultMouseHandler(ctrl)

			var got string
			scripts.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, script string) error {
					got = script
					return nil
				})

			bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts, Default: fallback}, ScriptOptions{})
			if tt.down {
				bridge.OtherMouseDown(testCtx(), tt.ev)
			} else {
				bridge.OtherMouseUp(testCtx(), tt.ev)
			}

			assert.Contains(t, got, tt.wantEvent)
			assert.Contains(t, got, tt.wantBtn)
		})
	}
}

func TestMouseBridge_PassesThroughOtherButtons(t *testing.T) {
	for _, button := range []int{0, 1, 2, 5, 8} {
		ctrl := gomock.NewController(t)
		scripts := mocks.NewMockScriptEvaluator(ctrl)
		fallback := mocks.NewMockDefaultMouseHandler(ctrl)

		down := port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: button, ClickCount: 1}
		up := port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: button, ClickCount: 1}
		fallback.EXPECT().MouseDown(down)
		fallback.EXPECT().MouseUp(up)
		scripts.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).Times(0)

		bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts, Default: fallback}, ScriptOptions{})
		bridge.OtherMouseDown(testCtx(), down)
		bridge.OtherMouseUp(testCtx(), up)
	}
}

func TestMouseBridge_MismatchedEventTypePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	scripts := mocks.NewMockScriptEvaluator(ctrl)
	fallback := mocks.NewMockDefaultMouseHandler(ctrl)

	ev := port.NativeMouseEvent{Type: port.MouseEventOther, ButtonNumber: 3}
	fallback.EXPECT().MouseDown(ev)
	fallback.EXPECT().MouseUp(ev)

	bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts, Default: fallback}, ScriptOptions{})
	bridge.OtherMouseDown(testCtx(), ev)
	bridge.OtherMouseUp(testCtx(), ev)
}

func TestMouseBridge_UsesGeometryAndButtonState(t *testing.T) {
	ctrl := gomock.NewController(t)
	scripts := mocks.NewMockScriptEvaluator(ctrl)
	geometry := mocks.NewMockViewGeometry(ctrl)
	buttons := mocks.NewMockButtonState(ctrl)

	geometry.EXPECT().ConvertFromWindow(port.Point{X: 110.9, Y: 220.5}).Return(port.Point{X: 10.9, Y: 20.5})
	buttons.EXPECT().PressedMouseButtons().Return(uint(1 << 3))

	var got string
	scripts.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, script string) error {
			got = script
			return nil
		})

	bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts, Geometry: geometry, Buttons: buttons}, ScriptOptions{})
	bridge.OtherMouseDown(testCtx(), port.NativeMouseEvent{
		Type:             port.MouseEventOtherDown,
		ButtonNumber:     3,
		LocationInWindow: port.Point{X: 110.9, Y: 220.5},
	})

	assert.Contains(t, got, "clientX: 10,")
	assert.Contains(t, got, "clientY: 20,")
	assert.Contains(t, got, "buttons: 8,")
}

func TestMouseBridge_ScriptErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	scripts := mocks.NewMockScriptEvaluator(ctrl)
	scripts.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).Return(errors.New("TypeError: el is null")).Times(2)

	bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts}, ScriptOptions{})
	assert.NotPanics(t, func() {
		bridge.OtherMouseDown(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 4})
		bridge.OtherMouseUp(testCtx(), port.NativeMouseEvent{Type: port.MouseEventOtherUp, ButtonNumber: 4})
	})
}

func TestMouseBridge_SetScriptOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	scripts := mocks.NewMockScriptEvaluator(ctrl)

	var scriptsSeen []string
	scripts.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, script string) error {
			scriptsSeen = append(scriptsSeen, script)
			return nil
		}).Times(2)

	bridge := NewMouseBridge(MouseBridgeDeps{Scripts: scripts}, ScriptOptions{})
	ev := port.NativeMouseEvent{Type: port.MouseEventOtherDown, ButtonNumber: 3}
	bridge.OtherMouseDown(testCtx(), ev)
	bridge.SetScriptOptions(ScriptOptions{GuardMissingElement: true})
	bridge.OtherMouseDown(testCtx(), ev)

	assert.NotContains(t, scriptsSeen[0], "if (!el)")
	assert.Contains(t, scriptsSeen[1], "if (!el)")
}

func TestDescribeEvent_RejectsOtherButtons(t *testing.T) {
	_, ok := DescribeEvent(port.NativeMouseEvent{ButtonNumber: 2}, mouse.PhaseDown, nil, nil)
	assert.False(t, ok)
}
