package models

// Roll represents one throw of the dice within a turn
type Roll struct {
	// Dice are the face values rolled
	Dice []int

	// Score is what the roll was worth
	Score int

	// Consumed are the dice that contributed to Score
	Consumed []int

	// Forced indicates the player had to roll because they had not entered yet
	Forced bool

	// HotDice indicates every remaining die scored and the player gets all
	// dice back
	HotDice bool

	// Farkle indicates nothing scored and the turn was lost
	Farkle bool
}
