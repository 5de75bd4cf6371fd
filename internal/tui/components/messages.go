package components

// NotificationExpiredMsg is sent when a notification's display window ends.
// Seq identifies which Show call scheduled it.
type NotificationExpiredMsg struct {
	Seq int
}
