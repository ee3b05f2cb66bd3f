// Package iwdg provides countdown timer drivers implementing watchdog.Timer.
//
// The register model follows the independent-watchdog peripheral found on the
// STM32 family: a key register gates write access and reloads/starts the
// counter, a prescaler register selects the clock divider, and a 12-bit
// reload register holds the countdown start value. Build-tagged variants
// adapt the same capability set to other hardware; Sim is the in-memory
// implementation for hosted builds and tests.
package iwdg

// Key register command values.
const (
	KeyUnlock = 0x5555 // disable register write protection
	KeyKick   = 0xAAAA // reload the counter
	KeyStart  = 0xCCCC // start the counter
)

// PrescalerCode maps a divider from the watchdog enumeration to the
// prescaler register encoding (4 -> 0, 8 -> 1, ... 256 -> 6).
// Unknown dividers map to the coarsest setting.
func PrescalerCode(divider uint16) uint8 {
	switch divider {
	case 4:
		return 0
	case 8:
		return 1
	case 16:
		return 2
	case 32:
		return 3
	case 64:
		return 4
	case 128:
		return 5
	default:
		return 6
	}
}
