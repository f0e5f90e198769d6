package game

import (
	"github.com/sirupsen/logrus"

	"github.com/fudance/shipsim/sim"
)

// NewLogReporter returns a collision reporter that writes one structured
// record per detected pair. Sustained overlaps log again every tick, which
// is the intended behavior of the collision system.
func NewLogReporter(log logrus.FieldLogger) sim.Reporter {
	return sim.ReporterFunc(func(pair sim.Pair) {
		log.WithFields(logrus.Fields{
			"controlled":   pair.Controlled,
			"uncontrolled": pair.Uncontrolled,
		}).Info("collision detected")
	})
}
