package dice

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
)

// Caps on a single NdM term keep a typed formula from exhausting memory.
const (
	MaxDiceCount = 100
	MaxDiceSides = 1000
)

// term is one signed summand of a formula: either NdM or a constant
type term struct {
	sign     int
	count    int
	sides    int
	constant float64
}

// Evaluate turns a change formula such as "2", "-1", "1d4+1" or
// "2d6 - 1 + 0.5" into a number. Dice terms are rolled with roller.
func Evaluate(formula string, roller Roller) (float64, error) {
	terms, err := parse(formula)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, t := range terms {
		if t.sides == 0 {
			total += float64(t.sign) * t.constant
			continue
		}

		result, err := roller.Roll(t.count, t.sides, 0)
		if err != nil {
			return 0, bonuserr.Wrapf(err, "rolling %dd%d", t.count, t.sides).
				WithMeta(bonuserr.MetaFormula, formula)
		}
		total += float64(t.sign * result.RawTotal)
	}

	return total, nil
}

// Validate reports whether formula parses, without rolling anything.
func Validate(formula string) error {
	_, err := parse(formula)
	return err
}

func parse(formula string) ([]term, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formula)
	if s == "" {
		return nil, bonuserr.Validation("formula is empty").WithMeta(bonuserr.MetaFormula, formula)
	}

	var terms []term
	for i := 0; i < len(s); {
		sign := 1
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}

		end := termEnd(s, i)
		token := s[i:end]
		i = end

		t, err := parseTerm(token)
		if err != nil {
			return nil, bonuserr.Wrapf(err, "invalid formula %q", formula).
				WithMeta(bonuserr.MetaFormula, formula)
		}
		t.sign = sign
		terms = append(terms, t)
	}

	return terms, nil
}

// termEnd returns the index of the next term sign at or after start.
// A sign right after e or E in a constant is an exponent, not a new term.
func termEnd(s string, start int) int {
	for j := start; j < len(s); j++ {
		if s[j] != '+' && s[j] != '-' {
			continue
		}
		if j > start && (s[j-1] == 'e' || s[j-1] == 'E') && !strings.ContainsAny(s[start:j], "dD") {
			continue
		}
		return j
	}
	return len(s)
}

func parseTerm(token string) (term, error) {
	if token == "" {
		return term{}, bonuserr.Validation("missing term")
	}

	if idx := strings.IndexAny(token, "dD"); idx >= 0 {
		count := 1
		if idx > 0 {
			n, err := strconv.Atoi(token[:idx])
			if err != nil {
				return term{}, bonuserr.Validationf("invalid dice count in %q", token)
			}
			count = n
		}
		sides, err := strconv.Atoi(token[idx+1:])
		if err != nil {
			return term{}, bonuserr.Validationf("invalid dice size in %q", token)
		}
		if count < 1 || sides < 1 {
			return term{}, bonuserr.Validationf("dice term %q must have positive count and size", token)
		}
		if count > MaxDiceCount || sides > MaxDiceSides {
			return term{}, bonuserr.Validationf("dice term %q exceeds %dd%d", token, MaxDiceCount, MaxDiceSides)
		}
		return term{count: count, sides: sides}, nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return term{}, bonuserr.Validationf("invalid number %q", token)
	}
	return term{constant: value}, nil
}
