package sync

import (
	gethevent "github.com/ethereum/go-ethereum/event"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
)

// importNotifyBufferSize bounds the notifications waiting for slow subscribers.
const importNotifyBufferSize = 64

// SubscribeImported delivers every block imported, by the coordinator or
// reported through BlockImported, to ch. The run loop never waits on a
// subscriber: notifications queue behind a slow subscriber and are dropped
// once importNotifyBufferSize of them are waiting.
func (s *Service) SubscribeImported(ch chan<- blocks.ROBlock) gethevent.Subscription {
	return s.importFeed.Subscribe(ch)
}

func (s *Service) publish(blk blocks.ROBlock) {
	select {
	case s.notifications <- blk:
	default:
		droppedImportNotifications.Inc()
		log.WithFields(blockFields(blk)).Warn("Import notification dropped, subscribers not ready")
	}
}

// notifyImported sends queued notifications to the feed. Send blocks until
// every subscriber has received the block or unsubscribed.
func (s *Service) notifyImported() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case blk := <-s.notifications:
			s.importFeed.Send(blk)
		}
	}
}
