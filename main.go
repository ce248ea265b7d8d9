package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"trwd/generator"
	"trwd/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(generator.ServerAddr(), upgrader)
	s.Serve()
}
