package main

import (
	"os"

	"github.com/mtinwala/notes-web/app/cmd/collection"
)

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "collection":
		collection.Run(os.Args[2:])
	default:
		listCommands()
	}
}

func listCommands() {
	println("Commands")
	println("\tcollection\t\t- Notes collection maintenance")
}
