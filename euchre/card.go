// Package euchre provides the card primitives and trick-taking rules for
// a standard 24-card euchre deck: suits, ranks, bower-aware effective
// suits, card power ordering, legal-move resolution and trick scoring.
package euchre

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. NoSuit is a sentinel meaning "no suit led
// yet" or "no trump chosen".
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoSuit
)

// Suits lists the four real suits in a fixed enumeration order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "-"
	}
}

// Name returns the spelled-out suit name
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "None"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// SameColor returns the other suit of the same color: Clubs↔Spades,
// Hearts↔Diamonds. NoSuit maps to itself.
func (s Suit) SameColor() Suit {
	switch s {
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	default:
		return NoSuit
	}
}

// Rank represents a card rank. Euchre uses only Nine through Ace.
type Rank int

const (
	Nine Rank = iota + 9
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists the six ranks in ascending non-trump order.
var Ranks = [6]Rank{Nine, Ten, Jack, Queen, King, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are plain values: equality and
// map keying are by (Suit, Rank), which is what the engine relies on to
// track known versus unknown cards without duplicate-card bugs.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-character card string like "As" or "9h"
// (rank then suit, case insensitive).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: must be 2 characters", s)
	}

	var rank Rank
	switch strings.ToUpper(s[:1]) {
	case "9":
		rank = Nine
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card %q", s[:1], s)
	}

	var suit Suit
	switch strings.ToLower(s[1:2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", s[1:2], s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a card string like "AsKh9d". Spaces between cards
// are allowed.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
