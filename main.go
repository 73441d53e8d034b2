package main

import "ipmanager/cmd"

func main() {
	cmd.Execute()
}
