package main

import "govern/cmd"

func main() {
	cmd.Execute()
}
