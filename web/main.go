package main

import (
	"flag"
	"log"
	"os"

	"github.com/dmw7/go-raycast-renderer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Raycast Renderer Web Server")
	log.Printf("GET http://localhost:%d/api/render to render a frame", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
