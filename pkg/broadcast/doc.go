// Package broadcast fans control state out to any number of channel
// subscribers.
//
// It complements the synchronous listener callbacks of the controls: a
// renderer running on its own goroutine subscribes once and receives every
// update over a channel. Updates describe state, so a subscriber that falls
// behind loses its oldest queued update, never the newest one.
//
//	b := broadcast.NewMemoryBroadcaster[string](4)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	b.Broadcast("hello")
//
//	for msg := range sub.Receive() {
//		fmt.Println(msg.Seq, msg.Data)
//	}
//
// A subscription ends when its context is cancelled, when Close is called
// on it, or when the broadcaster is closed.
package broadcast
