package trace

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// Summary aggregates a trace.
type Summary struct {
	Frames int // Last frame seen

	Spawned      int
	Destroyed    int
	PlayerShots  int
	EnemyShots   int
	PlayerHits   int
	PhaseChanges int

	// Frames between consecutive enemy spawns.
	SpawnIntervalMean float64
	SpawnIntervalStd  float64

	// Horizontal spawn position.
	SpawnXMean float64
	SpawnXStd  float64
}

// Summarize counts events by kind and computes spawn statistics. Means and
// deviations are NaN when there are too few spawns to define them.
func Summarize(records []Record) Summary {
	var s Summary
	var xs, intervals []float64
	lastSpawn := -1

	for _, r := range records {
		if r.Frame > s.Frames {
			s.Frames = r.Frame
		}
		switch r.Kind {
		case core.EventEnemySpawned.String():
			s.Spawned++
			xs = append(xs, float64(r.X))
			if lastSpawn >= 0 {
				intervals = append(intervals, float64(r.Frame-lastSpawn))
			}
			lastSpawn = r.Frame
		case core.EventEnemyDestroyed.String():
			s.Destroyed++
		case core.EventPlayerShot.String():
			s.PlayerShots++
		case core.EventEnemyShot.String():
			s.EnemyShots++
		case core.EventPlayerHit.String():
			s.PlayerHits++
		case core.EventPhaseChanged.String():
			s.PhaseChanges++
		}
	}

	s.SpawnXMean, s.SpawnXStd = meanStd(xs)
	s.SpawnIntervalMean, s.SpawnIntervalStd = meanStd(intervals)
	return s
}

func meanStd(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return x[0], math.NaN()
	}
	return stat.MeanStdDev(x, nil)
}

// Print writes a human readable summary.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "frames:          %d\n", s.Frames)
	fmt.Fprintf(w, "enemies spawned: %d\n", s.Spawned)
	fmt.Fprintf(w, "enemies killed:  %d\n", s.Destroyed)
	fmt.Fprintf(w, "player shots:    %d\n", s.PlayerShots)
	fmt.Fprintf(w, "enemy shots:     %d\n", s.EnemyShots)
	fmt.Fprintf(w, "player hits:     %d\n", s.PlayerHits)
	fmt.Fprintf(w, "spawn interval:  %.1f ± %.1f frames\n", s.SpawnIntervalMean, s.SpawnIntervalStd)
	fmt.Fprintf(w, "spawn x:         %.1f ± %.1f\n", s.SpawnXMean, s.SpawnXStd)
}
