package qrcode

// Penalty weights from ISO/IEC 18004 section 8.8.2.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// penaltyScore computes the total penalty for the current grid: runs of
// five or more same-color modules (N1), 2x2 same-color blocks (N2),
// finder-like 1:1:3:1:1 patterns with a light flank (N3), and dark/light
// imbalance (N4).
func (b *matrixBuilder) penaltyScore() int {
	result := 0
	size := b.size

	for y := 0; y < size; y++ {
		runColor := false
		runX := 0
		history := newFinderPenalty(size)
		for x := 0; x < size; x++ {
			if b.modules.Get(x, y) == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				history.addHistory(runX)
				if !runColor {
					result += history.countPatterns() * penaltyN3
				}
				runColor = b.modules.Get(x, y)
				runX = 1
			}
		}
		result += history.terminateAndCount(runColor, runX) * penaltyN3
	}

	for x := 0; x < size; x++ {
		runColor := false
		runY := 0
		history := newFinderPenalty(size)
		for y := 0; y < size; y++ {
			if b.modules.Get(x, y) == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				history.addHistory(runY)
				if !runColor {
					result += history.countPatterns() * penaltyN3
				}
				runColor = b.modules.Get(x, y)
				runY = 1
			}
		}
		result += history.terminateAndCount(runColor, runY) * penaltyN3
	}

	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			color := b.modules.Get(x, y)
			if color == b.modules.Get(x+1, y) &&
				color == b.modules.Get(x, y+1) &&
				color == b.modules.Get(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	dark := b.modules.CountSet()
	total := size * size
	// k is the number of 5% steps the dark ratio deviates from 50%.
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenalty tracks the recent run lengths along one row or column to
// detect finder-like patterns. The quiet zone beyond the symbol edge counts
// as an unbounded light run.
type finderPenalty struct {
	size       int
	runHistory [7]int
}

func newFinderPenalty(size int) *finderPenalty {
	return &finderPenalty{size: size}
}

// addHistory pushes a finished run length onto the history. The first run
// is padded with the symbol size to model the light quiet zone.
func (fp *finderPenalty) addHistory(runLength int) {
	if fp.runHistory[0] == 0 {
		runLength += fp.size
	}
	copy(fp.runHistory[1:], fp.runHistory[:6])
	fp.runHistory[0] = runLength
}

// countPatterns reports whether the history ends in a dark 1:1:3:1:1
// sequence with at least 4 units of light on either side.
func (fp *finderPenalty) countPatterns() int {
	n := fp.runHistory[1]
	if n > 0 &&
		fp.runHistory[2] == n &&
		fp.runHistory[3] == n*3 &&
		fp.runHistory[4] == n &&
		fp.runHistory[5] == n &&
		(fp.runHistory[0] >= n*4 || fp.runHistory[6] >= n*4) {
		return 1
	}
	return 0
}

// terminateAndCount closes out the final run at the symbol edge and counts
// any pattern that ends there.
func (fp *finderPenalty) terminateAndCount(currentRunColor bool, currentRunLength int) int {
	if currentRunColor {
		fp.addHistory(currentRunLength)
		currentRunLength = 0
	}
	currentRunLength += fp.size
	fp.addHistory(currentRunLength)
	return fp.countPatterns()
}
