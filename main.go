package main

import "attendsheet/cmd"

func main() {
	cmd.Execute()
}
