package day02

// Hand is a rock paper scissors gesture. Its value is the score it is worth.
type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

var hands = []Hand{Rock, Paper, Scissors}

// beats maps a hand to the hand it defeats.
var beats = map[Hand]Hand{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

func (h Hand) Score() int {
	return int(h)
}

// Outcome is the result of a round for the player.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

func (o Outcome) Score() int {
	return int(o) * 3
}

// Play returns the outcome of mine against theirs.
func Play(mine, theirs Hand) Outcome {
	switch {
	case mine == theirs:
		return Draw
	case beats[mine] == theirs:
		return Win
	default:
		return Lose
	}
}

// HandFor returns the hand to play against theirs to reach outcome.
func HandFor(outcome Outcome, theirs Hand) Hand {
	for _, h := range hands {
		if Play(h, theirs) == outcome {
			return h
		}
	}

	return 0
}
