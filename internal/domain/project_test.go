package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStageStepping(t *testing.T) {
	p := &Project{Name: "Amp board", Category: CategoryPCB, Status: StageIdea}

	next, ok := p.NextStage()
	assert.True(t, ok)
	assert.Equal(t, StageDesign, next)

	p.Status = StageCompleted
	next, ok = p.NextStage()
	assert.False(t, ok)
	assert.Equal(t, StageCompleted, next)

	prev, ok := p.PrevStage()
	assert.True(t, ok)
	assert.Equal(t, StageTesting, prev)

	p.Status = StageIdea
	prev, ok = p.PrevStage()
	assert.False(t, ok)
	assert.Equal(t, StageIdea, prev)
}

func TestProjectValidate(t *testing.T) {
	assert.Error(t, (&Project{Category: CategoryPCB, Status: StageIdea}).Validate())
	assert.Error(t, (&Project{Name: "X", Category: "gardening", Status: StageIdea}).Validate())
	assert.Error(t, (&Project{Name: "X", Category: CategoryOther, Status: "shipped"}).Validate())
	assert.NoError(t, (&Project{Name: "X", Category: CategorySoftware, Status: StageDesign}).Validate())
}

func TestParseBlockType(t *testing.T) {
	b, err := ParseBlockType("docs")
	assert.NoError(t, err)
	assert.Equal(t, BlockDocs, b)

	_, err = ParseBlockType("sleep")
	assert.Error(t, err)
}
