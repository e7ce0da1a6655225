package initializers

import (
	"math/rand"
)

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its
// bounds.
func Uniform(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}
	return &uniform{lower, upper}
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return rand.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution with
// the given center and standard deviation.
func Normal(mean, sd float64) *normal {
	return &normal{mean, sd}
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return rand.NormFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within a normal distribution
// truncated at 2 standard deviations. The number of standard deviations to
// truncate at can be changed with Trunc.
func TruncNormal(mean, sd float64) *truncNormal {
	return &truncNormal{Normal(mean, sd), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side.
// Trunc will panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random
// number.
func (t *truncNormal) Gen() float64 {
	for {
		v := rand.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
