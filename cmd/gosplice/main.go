package main

import "gosplice/cmd/gosplice/cmd"

func main() {
	cmd.Execute()
}
