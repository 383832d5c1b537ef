package main

import "solorun/cmd"

func main() {
	cmd.Execute()
}
