package main

import (
	"log"
	"os"

	"github.com/jotterhq/jotter/server"
)

func main() {
	if err := server.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
