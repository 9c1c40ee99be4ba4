package main

import "github.com/GoodbyeNJN/niri-app-hotkey/cmd"

func main() {
	cmd.Execute()
}
