package status

const (
	Preview   = "CMD"    // Command preview changed
	Launching = "LAUNCH" // scrcpy is being started
	Ready     = "READY"  // Controller idle, ready to launch
	Error     = "ERR"    // Launch or configuration error
)

// Message wraps a status code and message text
type Message struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// StatusChan carries status updates to the UI and the status server.
// Buffered so senders never block on a slow consumer.
var StatusChan = make(chan Message, 16)

// Send publishes a status update, dropping it if nobody is draining the
// channel fast enough.
func Send(code, text string) {
	select {
	case StatusChan <- Message{Code: code, Text: text}:
	default:
	}
}
