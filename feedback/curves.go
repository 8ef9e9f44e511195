package feedback

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultCurve eases the shake decay in and out from full strength to zero.
const DefaultCurve = "inOutSine"

// Curves lists the easing functions usable as a shake decay. Overshooting
// curves (elastic, back, bounce) are excluded so decay stays within [0, 1].
var Curves = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"inCirc":     ease.InCirc,
	"outCirc":    ease.OutCirc,
	"inOutCirc":  ease.InOutCirc,
}

// CurveByName resolves a decay curve. An empty name selects DefaultCurve.
func CurveByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = DefaultCurve
	}
	fn, ok := Curves[name]
	if !ok {
		names := make([]string, 0, len(Curves))
		for n := range Curves {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown decay curve %q (want one of %v)", name, names)
	}
	return fn, nil
}
