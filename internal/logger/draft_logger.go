package logger

import (
	"github.com/sirupsen/logrus"
)

// DraftLogger provides dedicated logging for draft operations.
type DraftLogger struct {
	*logrus.Entry
}

// NewDraftLogger creates a new draft logger.
func NewDraftLogger(baseLogger *logrus.Logger) *DraftLogger {
	return &DraftLogger{
		Entry: baseLogger.WithField("component", "draft"),
	}
}

// LogPick logs a recorded draft pick.
func (dl *DraftLogger) LogPick(pickNum int, teamName, playerName, position string, undraftedLeft int) {
	dl.WithFields(logrus.Fields{
		"pick_num":       pickNum,
		"team":           teamName,
		"player":         playerName,
		"position":       position,
		"undrafted_left": undraftedLeft,
	}).Info("Draft pick recorded")
}

// LogSuggestions logs the outcome of a suggestion run.
func (dl *DraftLogger) LogSuggestions(pickNum, candidates int, topPlayer string, topScore float64, durationMs float64) {
	dl.WithFields(logrus.Fields{
		"pick_num":    pickNum,
		"candidates":  candidates,
		"top_player":  topPlayer,
		"top_score":   topScore,
		"duration_ms": durationMs,
	}).Info("Pick suggestions computed")
}

// LogIntervalBatch logs a confidence interval computation.
func (dl *DraftLogger) LogIntervalBatch(players int, confidence float64, durationMs float64) {
	dl.WithFields(logrus.Fields{
		"players":     players,
		"confidence":  confidence,
		"duration_ms": durationMs,
	}).Info("Rank confidence intervals computed")
}
