package mint

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type tweenChannel struct {
	tween  *gween.Tween
	target *float64
}

// TweenGroup drives one gween tween per float64 field and writes each value
// back through its pointer. Nothing advances it implicitly: call Update once
// per frame with the elapsed seconds.
type TweenGroup struct {
	channels []tweenChannel
	Done     bool
}

// Update advances the group by dt seconds. Once every channel has finished,
// Done is set and further calls leave the targets alone.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	finished := 0
	for _, ch := range g.channels {
		v, end := ch.tween.Update(dt)
		*ch.target = float64(v)
		if end {
			finished++
		}
	}
	g.Done = finished == len(g.channels)
}

// Reset rewinds the group and writes the start values back.
func (g *TweenGroup) Reset() {
	for _, ch := range g.channels {
		ch.tween.Reset()
		v, _ := ch.tween.Set(0)
		*ch.target = float64(v)
	}
	g.Done = false
}

func newTweenGroup(duration float32, fn ease.TweenFunc, pairs ...*float64) *TweenGroup {
	g := &TweenGroup{channels: make([]tweenChannel, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		from, to := pairs[i], pairs[i+1]
		g.channels = append(g.channels, tweenChannel{
			tween:  gween.New(float32(*from), float32(*to), duration, fn),
			target: from,
		})
	}
	return g
}

// TweenColor moves every channel of *c towards to.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, &c.R, &to.R, &c.G, &to.G, &c.B, &to.B, &c.A, &to.A)
}

// TweenPoint moves *p towards to.
func TweenPoint(p *Point, to Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, &p.X, &to.X, &p.Y, &to.Y)
}

// TweenAngle turns *a towards to.
func TweenAngle(a *Angle, to Angle, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, &a.rad, &to.rad)
}
