package ttt

type Outcome int

const (
	InProgress Outcome = iota
	AIWins
	HumanWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case AIWins:
		return "AIWins"
	case HumanWins:
		return "HumanWins"
	case Draw:
		return "Draw"
	}
	return "InProgress"
}

func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Winner's mark as sent to the frontend ("X", "O"), or "" if there is none
func (o Outcome) Winner() string {
	switch o {
	case AIWins:
		return MarkAI
	case HumanWins:
		return MarkHuman
	}
	return MarkEmpty
}

// Classify the board. A complete line takes precedence over a full board.
func (b *Board) Outcome() Outcome {
	if winner, ok := b.CheckWinner(); ok {
		if winner == AI {
			return AIWins
		}
		return HumanWins
	}
	if b.IsFull() {
		return Draw
	}
	return InProgress
}
