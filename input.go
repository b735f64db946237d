package mint

// Key identifies a keyboard key independent of the windowing backend.
type Key uint16

const (
	KeyUnknown Key = iota
	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyMenu
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft   Button = iota // primary (left) mouse button
	ButtonRight                // secondary (right) mouse button
	ButtonMiddle               // middle mouse button (scroll wheel click)
	Button4
	Button5
)

// keyNames are the snake_case names used by Key.String and input scripts.
var keyNames = [...]string{
	KeyUnknown:      "unknown",
	KeySpace:        "space",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySemicolon:    "semicolon",
	KeyEqual:        "equal",
	KeyA:            "a",
	KeyB:            "b",
	KeyC:            "c",
	KeyD:            "d",
	KeyE:            "e",
	KeyF:            "f",
	KeyG:            "g",
	KeyH:            "h",
	KeyI:            "i",
	KeyJ:            "j",
	KeyK:            "k",
	KeyL:            "l",
	KeyM:            "m",
	KeyN:            "n",
	KeyO:            "o",
	KeyP:            "p",
	KeyQ:            "q",
	KeyR:            "r",
	KeyS:            "s",
	KeyT:            "t",
	KeyU:            "u",
	KeyV:            "v",
	KeyW:            "w",
	KeyX:            "x",
	KeyY:            "y",
	KeyZ:            "z",
	KeyLeftBracket:  "left_bracket",
	KeyBackslash:    "backslash",
	KeyRightBracket: "right_bracket",
	KeyGraveAccent:  "grave_accent",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyInsert:       "insert",
	KeyDelete:       "delete",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page_up",
	KeyPageDown:     "page_down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "caps_lock",
	KeyScrollLock:   "scroll_lock",
	KeyNumLock:      "num_lock",
	KeyPrintScreen:  "print_screen",
	KeyPause:        "pause",
	KeyF1:           "f1",
	KeyF2:           "f2",
	KeyF3:           "f3",
	KeyF4:           "f4",
	KeyF5:           "f5",
	KeyF6:           "f6",
	KeyF7:           "f7",
	KeyF8:           "f8",
	KeyF9:           "f9",
	KeyF10:          "f10",
	KeyF11:          "f11",
	KeyF12:          "f12",
	KeyLeftShift:    "left_shift",
	KeyLeftControl:  "left_control",
	KeyLeftAlt:      "left_alt",
	KeyLeftSuper:    "left_super",
	KeyRightShift:   "right_shift",
	KeyRightControl: "right_control",
	KeyRightAlt:     "right_alt",
	KeyRightSuper:   "right_super",
	KeyMenu:         "menu",
}

// String returns the key's name, or "unknown".
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name, as printed by Key.String.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

var buttonNames = [...]string{"left", "right", "middle", "button4", "button5"}

// String returns the button's name, or "unknown".
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// ParseButton returns the button with the given name, as printed by
// Button.String.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// EventKind is the closed set of window events folded into InputState.
type EventKind uint8

const (
	EventClose  EventKind = iota // the user asked to close the window
	EventKey                     // a key was pressed or released
	EventButton                  // a mouse button was pressed or released
	EventCursor                  // the cursor moved
)

// Event is a single window event.
type Event struct {
	Kind    EventKind
	Key     Key    // EventKey
	Button  Button // EventButton
	Pressed bool   // EventKey, EventButton
	Cursor  Point  // EventCursor
}

// CloseEvent returns a window-close event.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// KeyEvent returns a key transition event.
func KeyEvent(k Key, pressed bool) Event {
	return Event{Kind: EventKey, Key: k, Pressed: pressed}
}

// ButtonEvent returns a mouse button transition event.
func ButtonEvent(b Button, pressed bool) Event {
	return Event{Kind: EventButton, Button: b, Pressed: pressed}
}

// CursorEvent returns a cursor move event.
func CursorEvent(p Point) Event {
	return Event{Kind: EventCursor, Cursor: p}
}

// InputState is the current keyboard, mouse and cursor state, built by
// folding events in order.
type InputState struct {
	keys    map[Key]struct{}
	buttons map[Button]struct{}
	cursor  Point
	closed  bool

	injectQueue []Event
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	return &InputState{
		keys:    make(map[Key]struct{}),
		buttons: make(map[Button]struct{}),
	}
}

// Apply folds a single event into the state.
func (s *InputState) Apply(ev Event) {
	switch ev.Kind {
	case EventClose:
		s.closed = true
	case EventKey:
		if ev.Pressed {
			s.keys[ev.Key] = struct{}{}
		} else {
			delete(s.keys, ev.Key)
		}
	case EventButton:
		if ev.Pressed {
			s.buttons[ev.Button] = struct{}{}
		} else {
			delete(s.buttons, ev.Button)
		}
	case EventCursor:
		s.cursor = ev.Cursor
	}
}

// Step folds one frame of real events, then at most one injected event.
func (s *InputState) Step(events []Event) {
	for _, ev := range events {
		s.Apply(ev)
	}
	s.applyInjected()
}

// KeyPressed reports whether k is held down.
func (s *InputState) KeyPressed(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

// ButtonPressed reports whether b is held down.
func (s *InputState) ButtonPressed(b Button) bool {
	_, ok := s.buttons[b]
	return ok
}

// Cursor returns the last known cursor position.
func (s *InputState) Cursor() Point {
	return s.cursor
}

// SetCursor records a cursor position set by the application.
func (s *InputState) SetCursor(p Point) {
	s.cursor = p
}

// CloseRequested reports whether a close event has been folded.
func (s *InputState) CloseRequested() bool {
	return s.closed
}
