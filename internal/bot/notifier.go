package bot

import (
	"log"
	"sync"
)

type textSender interface {
	SendMessage(chatID int64, text string) error
}

// Notifier sends chat messages from a small worker pool. Submitting never
// blocks the caller and delivery is best-effort: failures are logged inside
// the worker, a full queue drops the message.
type Notifier struct {
	s     textSender
	tasks chan notifyTask
	wg    sync.WaitGroup
}

type notifyTask struct {
	chatID int64
	text   string
}

func NewNotifier(s textSender, workers, queue int) *Notifier {
	if workers <= 0 {
		workers = 4
	}
	if queue <= 0 {
		queue = 64
	}
	n := &Notifier{s: s, tasks: make(chan notifyTask, queue)}
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for t := range n.tasks {
		if err := n.s.SendMessage(t.chatID, t.text); err != nil {
			log.Printf("notify chat %d: %v", t.chatID, err)
		}
	}
}

// Notify queues a text for background delivery. Never blocks.
func (n *Notifier) Notify(chatID int64, text string) {
	select {
	case n.tasks <- notifyTask{chatID: chatID, text: text}:
	default:
		log.Printf("notify queue full, dropping message for chat %d", chatID)
	}
}

// Stop closes the queue and waits for in-flight sends to finish.
func (n *Notifier) Stop() {
	close(n.tasks)
	n.wg.Wait()
}
