package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetFlags(log.LstdFlags)

	app := NewApp()
	if err := app.Startup(context.Background()); err != nil {
		log.Fatalf("[app] startup failed: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[app] received %s, shutting down", s)
	case <-app.Done():
		log.Println("[app] session ended")
	}

	app.Shutdown()
}
