// Package dice implements the dice-pool notation parser and roller.
//
// A pool is any number of NdM terms summed together plus any number of
// signed integer modifiers, in any order, with optional whitespace:
// "2d6+1d4+2", "d10 + 20", "3d10-1". Terms with the same face count
// accumulate, so "2d6+1d6" is one entry of three d6.
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/oldworld/wjdr-api/internal/errors"
)

// termRegex matches the next term at the start of a normalized expression:
// an optionally signed dice term like "+2d6" or "d10", or a signed integer
// modifier like "-3". The dice alternative must come first so "+2d6" is not
// consumed as the modifier "+2".
var termRegex = regexp.MustCompile(`^([+-]?)(?:(\d*)[dD](\d+)|(\d+))`)

// Pool is a parsed dice pool: a multiset of die-face→count plus a flat
// modifier. Pools model physical dice: each die of a given size is distinct,
// so rolls of an entry draw values without replacement while the count fits
// the face range.
type Pool struct {
	dice     map[int]int
	modifier int
}

// New creates a pool directly from a face→count multiset and a modifier.
func New(dice map[int]int, modifier int) (*Pool, error) {
	if len(dice) == 0 {
		return nil, errors.InvalidExpression("dice pool requires at least one dice term")
	}
	copied := make(map[int]int, len(dice))
	for faces, count := range dice {
		if faces < 1 {
			return nil, errors.InvalidExpressionf("die must have at least one face, got d%d", faces)
		}
		if count < 1 {
			return nil, errors.InvalidExpressionf("dice count must be positive, got %dd%d", count, faces)
		}
		copied[faces] = count
	}
	return &Pool{dice: copied, modifier: modifier}, nil
}

// Parse parses a dice notation expression into a Pool. It fails with an
// INVALID_EXPRESSION error when the string contains anything that is not a
// dice term or modifier, or when no dice term is present at all.
func Parse(expression string) (*Pool, error) {
	normalized := normalize(expression)
	if normalized == "" {
		return nil, errors.InvalidExpression("empty dice expression")
	}

	dice := make(map[int]int)
	modifier := 0
	rest := normalized

	for rest != "" {
		matches := termRegex.FindStringSubmatch(rest)
		if matches == nil {
			return nil, errors.InvalidExpressionf("invalid dice expression %q: unexpected %q", expression, rest)
		}

		sign, countStr, facesStr, modStr := matches[1], matches[2], matches[3], matches[4]

		if modStr != "" {
			value, err := strconv.Atoi(modStr)
			if err != nil {
				return nil, errors.InvalidExpressionf("invalid modifier in %q", expression)
			}
			if sign == "-" {
				value = -value
			}
			modifier += value
		} else {
			if sign == "-" {
				return nil, errors.InvalidExpressionf("invalid dice expression %q: dice terms cannot be subtracted", expression)
			}
			count := 1
			if countStr != "" {
				var err error
				count, err = strconv.Atoi(countStr)
				if err != nil || count < 1 {
					return nil, errors.InvalidExpressionf("invalid dice count in %q", expression)
				}
			}
			faces, err := strconv.Atoi(facesStr)
			if err != nil || faces < 1 {
				return nil, errors.InvalidExpressionf("invalid die size in %q", expression)
			}
			dice[faces] += count
		}

		rest = rest[len(matches[0]):]
	}

	if len(dice) == 0 {
		return nil, errors.InvalidExpressionf("invalid dice expression %q: no dice term found", expression)
	}

	return &Pool{dice: dice, modifier: modifier}, nil
}

// normalize strips whitespace and collapses repeated signs until stable
// ("++" and "--" become "+", "+-" and "-+" become "-").
func normalize(expression string) string {
	s := strings.Join(strings.Fields(expression), "")
	for {
		collapsed := strings.NewReplacer("++", "+", "--", "+", "+-", "-", "-+", "-").Replace(s)
		if collapsed == s {
			return s
		}
		s = collapsed
	}
}

// Dice returns a copy of the face→count multiset.
func (p *Pool) Dice() map[int]int {
	out := make(map[int]int, len(p.dice))
	for faces, count := range p.dice {
		out[faces] = count
	}
	return out
}

// Modifier returns the flat modifier.
func (p *Pool) Modifier() int {
	return p.modifier
}

// Roll draws every die in the pool and returns the sum plus the modifier.
func (p *Pool) Roll() int {
	return p.RollWith(nil)
}

// RollWith rolls using the provided random source; a nil source uses the
// package default. Each face-size entry draws its dice without replacement
// from 1..faces. When the count exceeds the face count that sampling is
// impossible, so the entry degrades to independent draws.
func (p *Pool) RollWith(r *rand.Rand) int {
	total := p.modifier
	for faces, count := range p.dice {
		if count <= faces {
			total += sumDistinct(r, faces, count)
			continue
		}
		for i := 0; i < count; i++ {
			total += intn(r, faces) + 1
		}
	}
	return total
}

func sumDistinct(r *rand.Rand, faces, count int) int {
	order := perm(r, faces)
	sum := 0
	for _, v := range order[:count] {
		sum += v + 1
	}
	return sum
}

func intn(r *rand.Rand, n int) int {
	if r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n)
}

func perm(r *rand.Rand, n int) []int {
	if r != nil {
		return r.Perm(n)
	}
	return rand.Perm(n)
}

// String renders the pool back to canonical notation, largest dice first.
func (p *Pool) String() string {
	faces := make([]int, 0, len(p.dice))
	for f := range p.dice {
		faces = append(faces, f)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(faces)))

	var b strings.Builder
	for i, f := range faces {
		if i > 0 {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%dd%d", p.dice[f], f)
	}
	if p.modifier > 0 {
		fmt.Fprintf(&b, "+%d", p.modifier)
	} else if p.modifier < 0 {
		fmt.Fprintf(&b, "%d", p.modifier)
	}
	return b.String()
}
