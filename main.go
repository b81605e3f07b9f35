package main

import "lend-closet-backend/cmd"

func main() {
	cmd.Run()
}
