package main

import (
	"log"
	"net/http"

	"fortarena/arena"
	"fortarena/config"
	"fortarena/network"
)

func main() {
	config.Load()

	a := arena.New()
	go a.Run()

	http.HandleFunc("/ws", network.Handler(a))

	addr := ":" + config.Port()
	log.Printf("listening on %s (ws endpoint: /ws)", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
