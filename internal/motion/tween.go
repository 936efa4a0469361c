package motion

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Tween maps progress in [0..1] to a position along the path in [0..1].
type Tween func(n float64) float64

// Linear moves at constant speed.
func Linear(n float64) float64 {
	return n
}

// EaseInQuad starts slow and accelerates.
func EaseInQuad(n float64) float64 {
	return n * n
}

// EaseOutQuad starts fast and decelerates.
func EaseOutQuad(n float64) float64 {
	return -n * (n - 2)
}

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(n float64) float64 {
	if n < 0.5 {
		return 2 * n * n
	}
	n = n*2 - 1
	return -0.5 * (n*(n-2) - 1)
}

// EaseInOutSine follows half a cosine wave.
func EaseInOutSine(n float64) float64 {
	return -0.5 * (math.Cos(math.Pi*n) - 1)
}

var tweens = map[string]Tween{
	"linear":        Linear,
	"easeinquad":    EaseInQuad,
	"easeoutquad":   EaseOutQuad,
	"easeinoutquad": EaseInOutQuad,
	"easeinoutsine": EaseInOutSine,
}

// ParseTween resolves a tween by name. An empty name selects Linear.
func ParseTween(name string) (Tween, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if key == "" {
		return Linear, nil
	}
	t, ok := tweens[key]
	if !ok {
		return nil, fmt.Errorf("unknown tween %q (known: %s)", name, strings.Join(TweenNames(), ", "))
	}
	return t, nil
}

// TweenNames lists the names accepted by ParseTween.
func TweenNames() []string {
	names := make([]string, 0, len(tweens))
	for name := range tweens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
