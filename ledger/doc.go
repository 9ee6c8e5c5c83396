// Package ledger keeps a tamper-evident history of the hands drawn during
// one session.
//
// # Core Components
//
// History: An append-only log of draws with SHA-256 hash chaining.
//
// Block: A single draw holding the hand in short form, its classification
// and the state of the deck right after the draw.
//
// # Usage
//
// Create a History when the session starts and append a block after every
// draw. Verify can be called at any time to check that no recorded draw was
// altered. The history lives in memory only and ends with the session.
package ledger
