package blockchain

import (
	"fmt"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "blockchain")

// logs import related data of every block.
func logBlockImported(blk blocks.ROBlock) {
	root := blk.Root()
	parent := blk.ParentRoot()
	log.WithFields(logrus.Fields{
		"slot":          blk.Slot(),
		"blockRoot":     fmt.Sprintf("%#x", root[:8]),
		"parentRoot":    fmt.Sprintf("%#x", parent[:8]),
		"proposerIndex": blk.ProposerIndex(),
	}).Info("Imported block")
}
