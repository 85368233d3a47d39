package main

import "github.com/mouse-blink/annogen/cmd"

func main() {
	cmd.Execute()
}
