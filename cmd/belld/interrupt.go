package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// shutdownChannel is closed exactly once, by the interrupt-signal handler
// after every registered interrupt handler has run, matching the teacher's
// lnd.go shutdown-channel idiom.
var shutdownChannel = make(chan struct{})

var interruptHandlersMu sync.Mutex
var interruptHandlers []func()

// addInterruptHandler registers a cleanup function to run once, when the
// process receives an interrupt signal.
func addInterruptHandler(handler func()) {
	interruptHandlersMu.Lock()
	defer interruptHandlersMu.Unlock()
	interruptHandlers = append(interruptHandlers, handler)
}

// listenForInterrupt installs a signal handler that runs every registered
// interrupt handler once and then closes shutdownChannel.
func listenForInterrupt() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Infof("received interrupt signal, shutting down")

		interruptHandlersMu.Lock()
		handlers := interruptHandlers
		interruptHandlersMu.Unlock()

		for _, h := range handlers {
			h()
		}
		close(shutdownChannel)
	}()
}
