// Package sink implements the platform audio sink: it opens the device,
// pulls PCM from the mixer on demand, and reports the sampling rate and
// output latency.
package sink

// Sink is the platform audio device contract. The mixer never talks to
// a device directly; everything flows through this interface so a
// platform-specific implementation can replace OtoSink without touching
// the rest of the engine.
type Sink interface {
	// PlaybackRate returns the device's sampling rate, fixed for the
	// lifetime of the open device.
	PlaybackRate() int

	// SetLatency requests an advisory output latency in seconds and
	// returns the value actually in effect.
	SetLatency(seconds float64) float64

	// EnableHeadphoneDisconnectCheck turns on (or off) polling for a
	// headphone unplug event, where the platform can detect one.
	EnableHeadphoneDisconnectCheck(enabled bool)

	// CheckHeadphoneDisconnect reports whether a disconnect has been
	// observed since the last AckHeadphoneDisconnect.
	CheckHeadphoneDisconnect() bool

	// AckHeadphoneDisconnect clears the pending disconnect flag.
	AckHeadphoneDisconnect()

	Close() error
}
