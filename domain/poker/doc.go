// Package poker implements the card model and the wildcard-aware hand
// classifier.
//
// # Core Types
//
// Card: An immutable playing card, either a standard rank/suit pair or a
// Red or Black Joker.
//
// Classification: The best hand category found in a set of cards together
// with a label such as "Four Kings" or "Royal Flush of Spades".
//
// # Hand Evaluation
//
// Evaluate accepts any number of cards, not only five. Jokers substitute for
// whatever rank or suit completes a pattern. Categories are tried strictly in
// this order and the first match wins:
//
//	Straight Flush (Royal) → Four of a Kind → Full House → Flush →
//	Straight → Three of a Kind → Two Pair → Pair → Nothing
//
// Evaluate is a pure function and may be called from several goroutines.
//
// Only up to two Jokers are supported. With more, results are not guaranteed
// to be the best possible hand.
//
// # Literal Descriptions
//
// Describe gives the wildcard-free reading of a 5 or 7 card hand using
// github.com/paulhankin/poker. It is informational only.
package poker
