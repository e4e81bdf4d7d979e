package main

import "match-chat-api/config"

func main() {
	config.RunServer()
}
