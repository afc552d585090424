package main

import "blob-manager/cmd"

func main() {
	cmd.Execute()
}
