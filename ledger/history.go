package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/wildcard-poker/domain/poker"
)

type History struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewHistory creates a history with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty hand.
func NewHistory() *History {
	h := &History{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Hand:      []string{},
		Metadata:  Metadata{Remaining: -1},
	}
	genesis.Hash = h.calculateHash(genesis)
	h.blocks = append(h.blocks, genesis)

	return h
}

// Append records a drawn hand and its classification as a new block linked to
// the latest one. It returns the stored block, or an error if the resulting
// block does not validate against its predecessor.
func (h *History) Append(hand []poker.Card, c poker.Classification, meta Metadata) (Block, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) == 0 {
		return Block{}, fmt.Errorf("history has no genesis block")
	}
	latest := h.blocks[len(h.blocks)-1]

	short := make([]string, len(hand))
	for i, card := range hand {
		short[i] = card.Display(poker.Short)
	}
	newBlock := Block{
		Index:          latest.Index + 1,
		Timestamp:      time.Now().Unix(),
		PrevHash:       latest.Hash,
		Hand:           short,
		Classification: c.Label,
		Metadata:       meta,
	}
	newBlock.Hash = h.calculateHash(newBlock)

	if err := h.validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	h.blocks = append(h.blocks, newBlock)
	return newBlock, nil
}

// GetLatest returns the most recently added block.
// Returns an error if the history is empty.
func (h *History) GetLatest() (Block, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return Block{}, fmt.Errorf("history is empty")
	}

	return h.blocks[len(h.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (h *History) GetByIndex(index int) (Block, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if index < 0 || index >= len(h.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}

	return h.blocks[index], nil
}

// Len returns the number of recorded draws, not counting the genesis block.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.blocks) == 0 {
		return 0
	}
	return len(h.blocks) - 1
}

// Draws returns a copy of every recorded draw, oldest first, without the genesis block.
func (h *History) Draws() []Block {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.blocks) < 2 {
		return nil
	}
	return append([]Block(nil), h.blocks[1:]...)
}

// Verify validates the integrity of the whole history by checking the genesis block
// and verifying each subsequent block's hash, index continuity and previous hash linkage.
func (h *History) Verify() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.blocks) == 0 {
		return fmt.Errorf("empty history")
	}

	if h.blocks[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(h.blocks); i++ {
		current := h.blocks[i]
		previous := h.blocks[i-1]

		if err := h.validateBlock(current, previous); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

func (h *History) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := h.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp, previous
// hash, hand, classification and metadata. The hand and metadata are JSON marshaled
// before hashing.
func (h *History) calculateHash(block Block) string {
	handBytes, _ := json.Marshal(block.Hand)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(handBytes),
		block.Classification,
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
