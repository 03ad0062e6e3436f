package entity

const DefaultMatchPoint = 3

// Match is the running score across rounds.
type Match struct {
	PlayerScore   int
	ComputerScore int
	MatchPoint    int
}

func NewMatch(matchPoint int) *Match {
	if matchPoint < 1 {
		matchPoint = DefaultMatchPoint
	}

	return &Match{MatchPoint: matchPoint}
}

func (that *Match) Reset() {
	that.PlayerScore = 0
	that.ComputerScore = 0
}

// Award adds a point to the winner and reports whether it reached match point.
func (that *Match) Award(winner Cell) bool {
	switch winner {
	case PlayerMark:
		that.PlayerScore++
		return that.PlayerScore >= that.MatchPoint
	case ComputerMark:
		that.ComputerScore++
		return that.ComputerScore >= that.MatchPoint
	default:
		return false
	}
}
