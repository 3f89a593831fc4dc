package main

import (
	"os"

	"github.com/cshum/thumbor/config"
)

func main() {
	var server = config.CreateServer(os.Args[1:])
	if server != nil {
		server.Run()
	}
}
