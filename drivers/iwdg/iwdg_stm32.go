//go:build stm32

package iwdg

import (
	"device/stm32"
)

// STM32 drives the independent watchdog peripheral. The IWDG clocks from the
// LSI oscillator (45 kHz on the boards this firmware targets) and, once
// started, cannot be stopped except by a reset.
type STM32 struct {
	started bool
}

func NewSTM32() *STM32 { return &STM32{} }

func (d *STM32) Unlock() {
	stm32.IWDG.KR.Set(KeyUnlock)
}

func (d *STM32) SetDivider(divider uint16) {
	stm32.IWDG.PR.Set(uint32(PrescalerCode(divider)))
}

func (d *STM32) SetReload(value uint16) {
	stm32.IWDG.RLR.Set(uint32(value & 0x0FFF))
}

// Kick reloads the counter. The first kick after configuration also issues
// the start key so the counter begins running from the full reload value.
func (d *STM32) Kick() {
	stm32.IWDG.KR.Set(KeyKick)
	if !d.started {
		stm32.IWDG.KR.Set(KeyStart)
		d.started = true
	}
}

// CausedReset reads the IWDG reset flag from RCC and clears the reset flags
// so the next boot sees a clean latch. Call once, at startup.
func (d *STM32) CausedReset() bool {
	caused := stm32.RCC.CSR.HasBits(stm32.RCC_CSR_IWDGRSTF)
	stm32.RCC.CSR.SetBits(stm32.RCC_CSR_RMVF)
	return caused
}
