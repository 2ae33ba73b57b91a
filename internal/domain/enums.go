package domain

import "fmt"

type BlockType string

const (
	BlockStudy    BlockType = "study"
	BlockProject  BlockType = "project"
	BlockDocs     BlockType = "docs"
	BlockOutreach BlockType = "outreach"
	BlockReview   BlockType = "review"
)

// AllBlocks is the canonical ordered set of the five tracked blocks.
// Weekly review flags and the timer block selector follow this order.
var AllBlocks = []BlockType{
	BlockStudy, BlockProject, BlockDocs, BlockOutreach, BlockReview,
}

// ParseBlockType validates a raw block type string.
func ParseBlockType(s string) (BlockType, error) {
	for _, b := range AllBlocks {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown block type %q (expected one of study, project, docs, outreach, review)", s)
}

type ProjectStage string

const (
	StageIdea        ProjectStage = "idea"
	StageDesign      ProjectStage = "design"
	StageFabrication ProjectStage = "fabrication"
	StageTesting     ProjectStage = "testing"
	StageCompleted   ProjectStage = "completed"
)

// StageOrder is the fixed progression used by the next/prev convenience
// moves. Direct jumps to any stage are still allowed.
var StageOrder = []ProjectStage{
	StageIdea, StageDesign, StageFabrication, StageTesting, StageCompleted,
}

// ParseProjectStage validates a raw stage string.
func ParseProjectStage(s string) (ProjectStage, error) {
	for _, st := range StageOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown project stage %q (expected one of idea, design, fabrication, testing, completed)", s)
}

type ProjectCategory string

const (
	CategoryPCB      ProjectCategory = "pcb"
	CategorySoftware ProjectCategory = "software"
	CategoryDocs     ProjectCategory = "docs"
	CategoryOther    ProjectCategory = "other"
)

// ValidCategories is the canonical set of accepted project category strings.
var ValidCategories = map[string]bool{
	"pcb": true, "software": true, "docs": true, "other": true,
}

type BookStatus string

const (
	BookToRead    BookStatus = "to_read"
	BookReading   BookStatus = "reading"
	BookCompleted BookStatus = "completed"
	BookAbandoned BookStatus = "abandoned"
)

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// ValidMoods is the canonical set of accepted mood strings.
var ValidMoods = map[string]bool{
	"great": true, "good": true, "neutral": true, "bad": true, "terrible": true,
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)
