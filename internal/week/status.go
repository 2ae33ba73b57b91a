package week

type Status string

const (
	StatusPerfect Status = "perfect"
	StatusValid   Status = "valid"
	StatusBelow   Status = "below_minimum"
)

// Classify maps a week's done-block count to its status:
// all five perfect, three or four valid, fewer below minimum.
func Classify(doneCount int) Status {
	switch {
	case doneCount >= 5:
		return StatusPerfect
	case doneCount >= 3:
		return StatusValid
	default:
		return StatusBelow
	}
}

// Streak counts consecutive valid weeks walking backward from currentWeek
// to week 1. The walk stops at the first invalid week strictly before the
// current one; the current week never breaks the streak (it is still in
// progress) but only counts when itself valid.
func Streak(validByWeek map[int]bool, currentWeek int) int {
	count := 0
	for w := currentWeek; w >= 1; w-- {
		if validByWeek[w] {
			count++
		} else if w < currentWeek {
			break
		}
	}
	return count
}
