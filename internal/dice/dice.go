package dice

import (
	"log"
	"math/rand"

	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
)

// RollResult is the outcome of rolling count dice of a given size
type RollResult struct {
	Total    int
	RawTotal int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
}

func roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 || count > MaxDiceCount {
		return nil, bonuserr.Validationf("invalid dice count %d", count)
	}
	if sides < 1 || sides > MaxDiceSides {
		return nil, bonuserr.Validationf("invalid dice size %d", sides)
	}

	out := make([]int, count)
	total := 0
	for i := range out {
		out[i] = rand.Intn(sides) + 1
		total += out[i]
	}

	log.Println("Rolling", count, "d", sides, ":", out, "total:", total)
	return &RollResult{
		Total:    total + bonus,
		RawTotal: total,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
	}, nil
}
