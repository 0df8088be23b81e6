package searcher

import (
	"math"
	"othello/game"
)

// uct is the UCT selection policy for the children of one parent.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// pick returns the index of the child with the highest UCT value.
func (u uct) pick(children []*decision) int {
	maxIndex := -1
	maxScore := negInf
	for i, child := range children {
		rewards, visits := child.stats()
		score := u.evaluate(rewards, visits)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// visitPolicy maps each explored move to its share of the children's visits.
func visitPolicy(children []*decision) map[game.Move]float64 {
	policy := make(map[game.Move]float64, len(children))
	total := 0.0
	for _, child := range children {
		_, visits := child.stats()
		policy[child.move] = visits
		total += visits
	}
	if total == 0 {
		return policy
	}
	for move, visits := range policy {
		policy[move] = visits / total
	}
	return policy
}
