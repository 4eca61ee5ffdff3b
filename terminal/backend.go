package terminal

// Backend abstracts the platform device behind a Terminal.
// Implementations must be safe to Fini more than once.
type Backend interface {
	// Init switches the device into raw mode
	Init() error

	// Fini restores the mode captured by Init
	Fini() error

	// Size queries the device dimensions in cells
	Size() (width, height int, err error)

	// Write writes raw bytes to the device output
	Write(p []byte) error

	// Read blocks until at least one input byte is available
	Read(p []byte) (int, error)
}
