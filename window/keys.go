package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mint2d/mint"
)

var keyMap = map[glfw.Key]mint.Key{
	glfw.KeySpace:        mint.KeySpace,
	glfw.KeyApostrophe:   mint.KeyApostrophe,
	glfw.KeyComma:        mint.KeyComma,
	glfw.KeyMinus:        mint.KeyMinus,
	glfw.KeyPeriod:       mint.KeyPeriod,
	glfw.KeySlash:        mint.KeySlash,
	glfw.Key0:            mint.Key0,
	glfw.Key1:            mint.Key1,
	glfw.Key2:            mint.Key2,
	glfw.Key3:            mint.Key3,
	glfw.Key4:            mint.Key4,
	glfw.Key5:            mint.Key5,
	glfw.Key6:            mint.Key6,
	glfw.Key7:            mint.Key7,
	glfw.Key8:            mint.Key8,
	glfw.Key9:            mint.Key9,
	glfw.KeySemicolon:    mint.KeySemicolon,
	glfw.KeyEqual:        mint.KeyEqual,
	glfw.KeyA:            mint.KeyA,
	glfw.KeyB:            mint.KeyB,
	glfw.KeyC:            mint.KeyC,
	glfw.KeyD:            mint.KeyD,
	glfw.KeyE:            mint.KeyE,
	glfw.KeyF:            mint.KeyF,
	glfw.KeyG:            mint.KeyG,
	glfw.KeyH:            mint.KeyH,
	glfw.KeyI:            mint.KeyI,
	glfw.KeyJ:            mint.KeyJ,
	glfw.KeyK:            mint.KeyK,
	glfw.KeyL:            mint.KeyL,
	glfw.KeyM:            mint.KeyM,
	glfw.KeyN:            mint.KeyN,
	glfw.KeyO:            mint.KeyO,
	glfw.KeyP:            mint.KeyP,
	glfw.KeyQ:            mint.KeyQ,
	glfw.KeyR:            mint.KeyR,
	glfw.KeyS:            mint.KeyS,
	glfw.KeyT:            mint.KeyT,
	glfw.KeyU:            mint.KeyU,
	glfw.KeyV:            mint.KeyV,
	glfw.KeyW:            mint.KeyW,
	glfw.KeyX:            mint.KeyX,
	glfw.KeyY:            mint.KeyY,
	glfw.KeyZ:            mint.KeyZ,
	glfw.KeyLeftBracket:  mint.KeyLeftBracket,
	glfw.KeyBackslash:    mint.KeyBackslash,
	glfw.KeyRightBracket: mint.KeyRightBracket,
	glfw.KeyGraveAccent:  mint.KeyGraveAccent,
	glfw.KeyEscape:       mint.KeyEscape,
	glfw.KeyEnter:        mint.KeyEnter,
	glfw.KeyTab:          mint.KeyTab,
	glfw.KeyBackspace:    mint.KeyBackspace,
	glfw.KeyInsert:       mint.KeyInsert,
	glfw.KeyDelete:       mint.KeyDelete,
	glfw.KeyRight:        mint.KeyRight,
	glfw.KeyLeft:         mint.KeyLeft,
	glfw.KeyDown:         mint.KeyDown,
	glfw.KeyUp:           mint.KeyUp,
	glfw.KeyPageUp:       mint.KeyPageUp,
	glfw.KeyPageDown:     mint.KeyPageDown,
	glfw.KeyHome:         mint.KeyHome,
	glfw.KeyEnd:          mint.KeyEnd,
	glfw.KeyCapsLock:     mint.KeyCapsLock,
	glfw.KeyScrollLock:   mint.KeyScrollLock,
	glfw.KeyNumLock:      mint.KeyNumLock,
	glfw.KeyPrintScreen:  mint.KeyPrintScreen,
	glfw.KeyPause:        mint.KeyPause,
	glfw.KeyF1:           mint.KeyF1,
	glfw.KeyF2:           mint.KeyF2,
	glfw.KeyF3:           mint.KeyF3,
	glfw.KeyF4:           mint.KeyF4,
	glfw.KeyF5:           mint.KeyF5,
	glfw.KeyF6:           mint.KeyF6,
	glfw.KeyF7:           mint.KeyF7,
	glfw.KeyF8:           mint.KeyF8,
	glfw.KeyF9:           mint.KeyF9,
	glfw.KeyF10:          mint.KeyF10,
	glfw.KeyF11:          mint.KeyF11,
	glfw.KeyF12:          mint.KeyF12,
	glfw.KeyKPEnter:      mint.KeyEnter,
	glfw.KeyLeftShift:    mint.KeyLeftShift,
	glfw.KeyLeftControl:  mint.KeyLeftControl,
	glfw.KeyLeftAlt:      mint.KeyLeftAlt,
	glfw.KeyLeftSuper:    mint.KeyLeftSuper,
	glfw.KeyRightShift:   mint.KeyRightShift,
	glfw.KeyRightControl: mint.KeyRightControl,
	glfw.KeyRightAlt:     mint.KeyRightAlt,
	glfw.KeyRightSuper:   mint.KeyRightSuper,
	glfw.KeyMenu:         mint.KeyMenu,
}

// mapKey translates a GLFW key code. Keys with no mint equivalent are not
// tracked.
func mapKey(k glfw.Key) (mint.Key, bool) {
	mk, ok := keyMap[k]
	return mk, ok
}

// mapButton translates a GLFW mouse button. Buttons past the fifth are not
// tracked.
func mapButton(b glfw.MouseButton) (mint.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return mint.ButtonLeft, true
	case glfw.MouseButtonRight:
		return mint.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return mint.ButtonMiddle, true
	case glfw.MouseButton4:
		return mint.Button4, true
	case glfw.MouseButton5:
		return mint.Button5, true
	}
	return 0, false
}
