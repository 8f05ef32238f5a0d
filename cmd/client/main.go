package main

import "gotodo/cmd/client/cmd"

func main() {
	cmd.Execute()
}
