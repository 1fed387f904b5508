package shell

import (
	"os"
	"os/signal"
)

// TrapInterrupts keeps the process alive across terminal interrupts by
// catching and discarding them. The disposition must be caught, not
// ignored: an ignored disposition survives exec and would leave every
// launched child immune to interrupts too, while a caught one reverts
// to the default so a foreground child can still be killed from the
// terminal. The returned function uninstalls the trap.
func TrapInterrupts() func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	go func() {
		for range sigs {
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
	}
}
