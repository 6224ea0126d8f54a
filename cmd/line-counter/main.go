package main

import "line-counter/cmd"

func main() {
	cmd.Execute()
}
