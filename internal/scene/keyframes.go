package scene

import (
	"fmt"
	"sort"
)

type key struct {
	frame int
	v     []float64
}

// channel is one animated property. Values hold before the first and after
// the last key and are linear in between.
type channel struct {
	base []float64
	keys []key
}

func (c *channel) add(frame int, v []float64) {
	c.keys = append(c.keys, key{frame: frame, v: v})
}

func (c *channel) sort() {
	sort.SliceStable(c.keys, func(i, j int) bool { return c.keys[i].frame < c.keys[j].frame })
}

func (c *channel) at(frame int) []float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return c.base
	case frame <= c.keys[0].frame:
		return c.keys[0].v
	case frame >= c.keys[n-1].frame:
		return c.keys[n-1].v
	}

	i := sort.Search(n, func(i int) bool { return c.keys[i].frame > frame }) - 1
	k0, k1 := c.keys[i], c.keys[i+1]
	t := float64(frame-k0.frame) / float64(k1.frame-k0.frame)

	out := make([]float64, len(k0.v))
	for j := range out {
		out[j] = k0.v[j] + (k1.v[j]-k0.v[j])*t
	}
	return out
}

func checkLen(what string, v []float64, n int) error {
	if v != nil && len(v) != n {
		return fmt.Errorf("%s: want %d values, got %d", what, n, len(v))
	}
	return nil
}
