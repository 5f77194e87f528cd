package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadScript is returned for input scripts that cannot be parsed.
var ErrBadScript = errors.New("bad input script")

// ScriptStep holds one input for a number of frames.
type ScriptStep struct {
	Input  Input
	Frames int
}

// Script is a sequence of held inputs. After the last step no key is held.
type Script []ScriptStep

// ParseScript parses comma separated "key:frames" steps, where key is left, right or none.
// An empty string is an empty script.
func ParseScript(s string) (Script, error) {
	var script Script
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for i, part := range strings.Split(s, ",") {
		name, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: step %d %q is not key:frames", ErrBadScript, i+1, part)
		}

		frames, err := strconv.Atoi(count)
		if err != nil || frames < 0 {
			return nil, fmt.Errorf("%w: step %d has invalid frame count %q", ErrBadScript, i+1, count)
		}

		var input Input
		switch strings.ToLower(name) {
		case "left":
			input.Left = true
		case "right":
			input.Right = true
		case "none":
		default:
			return nil, fmt.Errorf("%w: step %d has unknown key %q", ErrBadScript, i+1, name)
		}

		script = append(script, ScriptStep{Input: input, Frames: frames})
	}
	return script, nil
}

// Frames returns the total frames the script covers.
func (s Script) Frames() int {
	total := 0
	for _, step := range s {
		total += step.Frames
	}
	return total
}

// InputAt returns the input held on the given zero-based frame.
func (s Script) InputAt(frame int) Input {
	for _, step := range s {
		if frame < step.Frames {
			return step.Input
		}
		frame -= step.Frames
	}
	return Input{}
}
