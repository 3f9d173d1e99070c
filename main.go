package main

import "agilefant.com/agilefant/cmd"

func main() {
	cmd.Execute()
}
