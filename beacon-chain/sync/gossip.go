package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
)

// GossipMessage is a message received from the network. Every implementation
// is declared in this file.
type GossipMessage interface {
	isGossipMessage()
}

// BlockMessage carries a beacon block.
type BlockMessage struct {
	Block blocks.ROBlock
}

// ContributionMessage carries an aggregator's sync committee contribution.
type ContributionMessage struct {
	Contribution *synccommittee.ContributionAndProof
}

// CommitteeMessage carries a single validator's sync committee message.
type CommitteeMessage struct {
	Message *synccommittee.SyncCommitteeMessage
}

func (*BlockMessage) isGossipMessage()        {}
func (*ContributionMessage) isGossipMessage() {}
func (*CommitteeMessage) isGossipMessage()    {}

// ReceiveGossip routes a network message to the coordinator or the
// contribution store.
func (s *Service) ReceiveGossip(ctx context.Context, msg GossipMessage) error {
	switch m := msg.(type) {
	case *BlockMessage:
		gossipReceived.WithLabelValues("block").Inc()
		return s.ReceiveBlock(ctx, m.Block)
	case *ContributionMessage:
		gossipReceived.WithLabelValues("contribution").Inc()
		if s.cfg.Contributions == nil {
			return errNoContributionSaver
		}
		return errors.Wrap(s.cfg.Contributions.SaveSyncCommitteeContribution(ctx, m.Contribution), "could not save contribution")
	case *CommitteeMessage:
		gossipReceived.WithLabelValues("message").Inc()
		if s.cfg.Contributions == nil {
			return errNoContributionSaver
		}
		return errors.Wrap(s.cfg.Contributions.SaveSyncCommitteeMessage(ctx, m.Message), "could not save sync committee message")
	default:
		return errors.Errorf("unknown gossip message type %T", msg)
	}
}
