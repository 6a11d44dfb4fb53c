package game

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

// Decorative set sizes.
const (
	StarCount  = 50
	CloudCount = 8
)

// Position is a point on the viewport, in pixels.
type Position struct {
	X, Y float64
}

// Star is a static twinkle point.
type Star struct {
	Index      int
	Size       float64 // radius in pixels
	Brightness float64 // 0..1 opacity
}

// Cloud is a soft puff that drifts sideways.
type Cloud struct {
	Index  int
	Width  float64
	Height float64
	Speed  float64 // pixels per second
}

// StarView is a read-only copy of one star.
type StarView struct {
	X, Y       float64
	Size       float64
	Brightness float64
}

// CloudView is a read-only copy of one cloud.
type CloudView struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Sky holds the decorative stars and clouds. They are created once, inside
// the viewport known at startup, and never written again. A nil *Sky reads
// as empty.
type Sky struct {
	ECS    *ecs.World
	stars  []ecs.Entity
	clouds []ecs.Entity

	starMap    *ecs.Map2[Position, Star]
	cloudMap   *ecs.Map2[Position, Cloud]
	starFilter *ecs.Filter2[Position, Star]
}

// NewSky generates the decorative sets for a viewport of w×h from seed.
func NewSky(seed int64, w, h float64) *Sky {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))
	world := ecs.NewWorld(StarCount + CloudCount)

	sky := &Sky{
		ECS:        world,
		starMap:    ecs.NewMap2[Position, Star](world),
		cloudMap:   ecs.NewMap2[Position, Cloud](world),
		starFilter: ecs.NewFilter2[Position, Star](world),
	}

	for i := 0; i < StarCount; i++ {
		e := sky.starMap.NewEntity(
			&Position{X: rng.Float64() * w, Y: rng.Float64() * h},
			&Star{Index: i, Size: 0.5 + rng.Float64()*1.5, Brightness: 0.3 + rng.Float64()*0.7},
		)
		sky.stars = append(sky.stars, e)
	}

	// Clouds live in the upper two thirds so they never sit on the ground.
	for i := 0; i < CloudCount; i++ {
		cw := 80 + rng.Float64()*120
		e := sky.cloudMap.NewEntity(
			&Position{X: rng.Float64() * w, Y: rng.Float64() * h * 2 / 3},
			&Cloud{Index: i, Width: cw, Height: cw * (0.3 + rng.Float64()*0.2), Speed: 5 + rng.Float64()*20},
		)
		sky.clouds = append(sky.clouds, e)
	}
	return sky
}

// StarCount returns the size of the decorative star set.
func (s *Sky) StarCount() int {
	if s == nil {
		return 0
	}
	return len(s.stars)
}

// CloudCount returns the size of the cloud set.
func (s *Sky) CloudCount() int {
	if s == nil {
		return 0
	}
	return len(s.clouds)
}

// Star returns star i. ok is false when i is outside the set.
func (s *Sky) Star(i int) (StarView, bool) {
	if i < 0 || i >= s.StarCount() {
		return StarView{}, false
	}
	pos, st := s.starMap.Get(s.stars[i])
	return StarView{X: pos.X, Y: pos.Y, Size: st.Size, Brightness: st.Brightness}, true
}

// Cloud returns cloud i. ok is false when i is outside the set.
func (s *Sky) Cloud(i int) (CloudView, bool) {
	if i < 0 || i >= s.CloudCount() {
		return CloudView{}, false
	}
	pos, c := s.cloudMap.Get(s.clouds[i])
	return CloudView{X: pos.X, Y: pos.Y, Width: c.Width, Height: c.Height, Speed: c.Speed}, true
}

// EachStar calls fn for every star, in no particular order.
func (s *Sky) EachStar(fn func(StarView)) {
	if s == nil {
		return
	}
	query := s.starFilter.Query()
	for query.Next() {
		pos, st := query.Get()
		fn(StarView{X: pos.X, Y: pos.Y, Size: st.Size, Brightness: st.Brightness})
	}
}
