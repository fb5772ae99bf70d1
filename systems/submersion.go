package systems

import "fmt"

// Level is a crocodile's submersion depth, from fully surfaced to hidden.
// Levels are ordered; a crocodile moves at most one level per tick.
type Level uint8

const (
	FullySurfaced Level = iota
	MostlySurfaced
	MostlySubmerged
	HeadOnly
	FullySubmerged // invisible and not interactive
)

// LevelCount is the number of submersion levels.
const LevelCount = int(FullySubmerged) + 1

var levelNames = [LevelCount]string{
	"fully_surfaced",
	"mostly_surfaced",
	"mostly_submerged",
	"head_only",
	"fully_submerged",
}

func (l Level) String() string {
	if int(l) < LevelCount {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// Hidden reports whether the crocodile is fully under water.
func (l Level) Hidden() bool {
	return l >= FullySubmerged
}

// Next returns the next deeper level, saturating at FullySubmerged.
func (l Level) Next() Level {
	if l >= FullySubmerged {
		return FullySubmerged
	}
	return l + 1
}

// Prev returns the next shallower level, saturating at FullySurfaced.
func (l Level) Prev() Level {
	if l == FullySurfaced {
		return FullySurfaced
	}
	return l - 1
}

// Toward returns the level one step closer to target.
func (l Level) Toward(target Level) Level {
	switch {
	case l < target:
		return l.Next()
	case l > target:
		return l.Prev()
	}
	return l
}

// ClampLevel converts an integer into the enumeration, clamping out-of-range
// values to the nearest bound.
func ClampLevel(v int) Level {
	if v < 0 {
		return FullySurfaced
	}
	if v >= LevelCount {
		return FullySubmerged
	}
	return Level(v)
}
