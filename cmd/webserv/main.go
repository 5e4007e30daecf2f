package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/indigo-web/webserv"
	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/site"
)

func main() {
	port := config.DefaultPort
	if len(os.Args) > 1 {
		var err error
		if port, err = config.ParsePort(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "usage: %s [port]: %s\n", os.Args[0], err)
			os.Exit(1)
		}
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := webserv.New(":" + strconv.Itoa(int(port))).
		Logger(logger).
		NotifyOnStop(func() {
			logger.Print("server stopped")
		})

	if err := app.Serve(ctx, site.New()); err != nil {
		logger.Fatal(err)
	}
}
