package mint

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Button string  `yaml:"button,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated visual testing. Scripts are YAML (or JSON) documents:
//
//	steps:
//	  - {action: screenshot, label: initial}
//	  - {action: click, x: 100, y: 200, button: left}
//	  - {action: key, key: space}
//	  - {action: drag, fromX: 0, fromY: 0, toX: 50, toY: 50, frames: 10}
//	  - {action: wait, frames: 3}
//	  - {action: screenshot, label: after-click}
//
// Attach a runner to a window with SetScript, or call Step once per frame
// before Graphics.Update.
type ScriptRunner struct {
	// Dir is where screenshots are written. Defaults to "screenshots".
	Dir string

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses an input script and returns a runner positioned at its
// first step.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "mint: parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("mint: parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, errors.Wrapf(err, "mint: parse script: step %d", i)
		}
	}
	return &ScriptRunner{Dir: "screenshots", steps: sc.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "screenshot", "wait":
	case "click", "drag":
		if st.Button != "" {
			if _, ok := ParseButton(st.Button); !ok {
				return errors.Errorf("unknown button %q", st.Button)
			}
		}
	case "key":
		if _, ok := ParseKey(st.Key); !ok {
			return errors.Errorf("unknown key %q", st.Key)
		}
	default:
		return errors.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// button defaults to the left button when the step names none.
func (st scriptStep) button() Button {
	if b, ok := ParseButton(st.Button); ok {
		return b
	}
	return ButtonLeft
}

// Done reports whether every step has run and its input has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first screenshot failure, if any.
func (r *ScriptRunner) Err() error {
	return r.err
}

// Step advances the runner by one frame. Screenshots are taken from g, which
// may be nil for input-only scripts.
func (r *ScriptRunner) Step(in *InputState, g *Graphics) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.PendingInjected() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if g != nil {
			path, err := g.Screenshot(r.Dir, st.Label)
			if err != nil && r.err == nil {
				r.err = err
			} else if err == nil {
				Logger().Info("screenshot", "path", path)
			}
		}
	case "click":
		in.InjectClick(Point{X: st.X, Y: st.Y}, st.button())
	case "key":
		k, _ := ParseKey(st.Key)
		in.InjectKeyTap(k)
	case "drag":
		in.InjectDrag(Point{X: st.FromX, Y: st.FromY}, Point{X: st.ToX, Y: st.ToY}, st.button(), st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.PendingInjected() == 0 {
		r.done = true
	}
}
