package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 75, PercentOf(9, 12))
	assert.Equal(t, 83, PercentOf(10, 12))
	assert.Equal(t, 100, PercentOf(12, 12))
	// No clamp: progress past the target reports above 100.
	assert.Equal(t, 125, PercentOf(15, 12))
	assert.Equal(t, 0, PercentOf(5, 0))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandAtRisk, BandFor(0))
	assert.Equal(t, BandAtRisk, BandFor(49))
	assert.Equal(t, BandCaution, BandFor(50))
	assert.Equal(t, BandCaution, BandFor(75))
	assert.Equal(t, BandCaution, BandFor(79))
	assert.Equal(t, BandOnTrack, BandFor(80))
	assert.Equal(t, BandOnTrack, BandFor(120))
}

func TestObjectivePercentAndBand(t *testing.T) {
	o := &Objective{Title: "Publish articles", TargetValue: 12, CurrentProgress: 9}
	assert.Equal(t, 75, o.Percent())
	assert.Equal(t, BandCaution, o.Band())

	o.CurrentProgress = 10
	assert.Equal(t, 83, o.Percent())
	assert.Equal(t, BandOnTrack, o.Band())
}

func TestObjectiveValidate(t *testing.T) {
	o := &Objective{Title: "", TargetValue: 10}
	assert.Error(t, o.Validate())

	o = &Objective{Title: "Read", TargetValue: 0}
	assert.Error(t, o.Validate())

	o = &Objective{Title: "Read", TargetValue: 10, CurrentProgress: -1}
	assert.Error(t, o.Validate())

	o = &Objective{Title: "Read", TargetValue: 10, CurrentProgress: 11}
	assert.NoError(t, o.Validate(), "progress past the target is allowed")
}
