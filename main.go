package main

import "github.com/notaneet/rasp03/cmd"

func main() {
	cmd.Execute()
}
