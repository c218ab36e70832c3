package compass

import (
	"github.com/rs/zerolog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxClipFields = 4

// Clip animates up to 4 float64 fields simultaneously. Create one via
// TweenFloats or TweenColor and drive it through an Animator, or call Update
// directly. Every Start re-reads the fields, so a clip always tweens from the
// current values to its targets.
type Clip struct {
	tweens   [maxClipFields]*gween.Tween
	fields   [maxClipFields]*float64
	to       [maxClipFields]float32
	count    int
	duration float32
	fn       ease.TweenFunc
	Done     bool
}

// TweenFloats creates a clip that animates each field to the matching target.
// Only the first 4 pairs are used.
func TweenFloats(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *Clip {
	c := &Clip{duration: duration, fn: fn}
	for i := 0; i < len(fields) && i < len(to) && i < maxClipFields; i++ {
		c.fields[i] = fields[i]
		c.to[i] = float32(to[i])
		c.count++
	}
	c.Start()
	return c
}

// TweenColor creates a clip that animates all four components of *col.
func TweenColor(col *Color, to Color, duration float32, fn ease.TweenFunc) *Clip {
	return TweenFloats(
		[]*float64{&col.R, &col.G, &col.B, &col.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn,
	)
}

// Start rewinds the clip so it runs from the fields' current values.
func (c *Clip) Start() {
	if c.fn == nil {
		c.fn = ease.Linear
	}
	for i := 0; i < c.count; i++ {
		c.tweens[i] = gween.New(float32(*c.fields[i]), c.to[i], c.duration, c.fn)
	}
	c.Done = c.count == 0
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (c *Clip) Update(dt float32) {
	if c.Done {
		return
	}
	allDone := true
	for i := 0; i < c.count; i++ {
		val, finished := c.tweens[i].Update(dt)
		*c.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	c.Done = allDone
}

// Animator maps trigger names to clips. It implements Triggerable; at most one
// clip plays at a time and a new trigger replaces the current one.
type Animator struct {
	name    string
	clips   map[string]*Clip
	current *Clip
	playing string
	log     zerolog.Logger
}

// NewAnimator creates an animator with no clips. name is used in diagnostics.
func NewAnimator(name string) *Animator {
	return &Animator{
		name:  name,
		clips: make(map[string]*Clip),
		log:   compassLog.With().Str("animator", name).Logger(),
	}
}

// SetLogger overrides the animator's logger.
func (a *Animator) SetLogger(l zerolog.Logger) {
	a.log = l.With().Str("animator", a.name).Logger()
}

// AddClip registers clip under trigger, replacing any previous clip. The clip
// is marked done until its trigger fires.
func (a *Animator) AddClip(trigger string, clip *Clip) {
	clip.Done = true
	a.clips[trigger] = clip
}

// SetTrigger starts the clip registered under name. Unknown names are logged
// and ignored.
func (a *Animator) SetTrigger(name string) {
	clip, ok := a.clips[name]
	if !ok {
		a.log.Warn().Str("trigger", name).Msg("No clip for trigger")
		return
	}
	clip.Start()
	a.current = clip
	a.playing = name
	a.log.Debug().Str("trigger", name).Msg("Clip started")
}

// Update advances the current clip by dt seconds.
func (a *Animator) Update(dt float32) {
	if a.current == nil {
		return
	}
	a.current.Update(dt)
	if a.current.Done {
		a.current = nil
		a.playing = ""
	}
}

// Playing returns the trigger of the clip in progress, or "" when idle.
func (a *Animator) Playing() string {
	return a.playing
}

// Ease returns the easing function for a layout name such as "outBack".
// Unknown names fall back to ease.Linear and report false.
func Ease(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	if !ok {
		return ease.Linear, name == ""
	}
	return fn, true
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}
