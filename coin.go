// Copyright (C) 2026. See AUTHORS.

package random

// Coin returns random bools while making minimum calls to the
// generator: one state advance serves 31 tosses.
type Coin struct {
	r    *Random
	val  int64
	bits int
}

// NewCoin returns a Coin drawing from r.
func NewCoin(r *Random) *Coin {
	return &Coin{r: r}
}

// Toss returns the next random bool.
func (c *Coin) Toss() (val bool) {
	if c.bits == 0 {
		c.val = c.r.step()
		c.bits = 31
	}
	c.bits--
	val = c.val&1 > 0
	c.val >>= 1
	return val
}
